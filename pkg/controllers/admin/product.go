package admin

import (
	"net/http"
	"strconv"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProduct adds a catalog product, optionally with inline color variants.
// Product names must carry all three locales.
func CreateProduct(c *gin.Context) {
	var req struct {
		Name    models.LocalizedText `json:"name" binding:"required"`
		Price   float64              `json:"price" binding:"required"`
		Size    string               `json:"size"`
		Details []struct {
			ColorName models.LocalizedText `json:"colorName" binding:"required"`
			ColorCode string               `json:"colorCode"`
			Quantity  int                  `json:"quantity"`
			Picture   string               `json:"picture"`
		} `json:"details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name and price are required"})
		return
	}

	if err := req.Name.WriteValidate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name: " + err.Error()})
		return
	}
	for _, detail := range req.Details {
		if err := detail.ColorName.WriteValidate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "colorName: " + err.Error()})
			return
		}
	}

	var product models.Product

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		product = models.Product{
			Name:  req.Name,
			Price: req.Price,
			Size:  req.Size,
		}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}

		for _, detail := range req.Details {
			productDetail := models.ProductDetail{
				ProductID: product.ID,
				ColorName: detail.ColorName,
				ColorCode: detail.ColorCode,
				Quantity:  detail.Quantity,
				Picture:   detail.Picture,
			}
			if err := tx.Create(&productDetail).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
		return
	}

	database.DB.Preload("Details").First(&product, product.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct edits product fields. Changing the price never touches the
// snapshotted prices on existing order lines.
func UpdateProduct(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("productId"))

	var req struct {
		Name  *models.LocalizedText `json:"name"`
		Price *float64              `json:"price"`
		Size  *string               `json:"size"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	if req.Name != nil {
		if err := req.Name.WriteValidate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name: " + err.Error()})
			return
		}
	}

	var product models.Product
	if err := database.DB.First(&product, productID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Size != nil {
		updates["size"] = *req.Size
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct removes a product and cascades to its color variants
func DeleteProduct(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("productId"))

	var product models.Product
	if err := database.DB.First(&product, productID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(`"productId" = ?`, productID).Delete(&models.ProductDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
