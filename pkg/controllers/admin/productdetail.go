package admin

import (
	"log"
	"net/http"
	"strconv"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"
	"github.com/NadirSa01/zelije-backend/pkg/services"

	"github.com/gin-gonic/gin"
)

// CreateProductDetail adds one color variant to an existing product
func CreateProductDetail(c *gin.Context) {
	var req struct {
		ProductID int                  `json:"productId" binding:"required"`
		ColorName models.LocalizedText `json:"colorName" binding:"required"`
		ColorCode string               `json:"colorCode"`
		Quantity  int                  `json:"quantity"`
		Picture   string               `json:"picture"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "productId and colorName are required"})
		return
	}

	if err := req.ColorName.WriteValidate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "colorName: " + err.Error()})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	detail := models.ProductDetail{
		ProductID: req.ProductID,
		ColorName: req.ColorName,
		ColorCode: req.ColorCode,
		Quantity:  req.Quantity,
		Picture:   req.Picture,
	}
	if err := database.DB.Create(&detail).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product detail"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Product detail created successfully",
		"productDetail": detail,
	})
}

// GetProductDetail returns one variant, 404 if absent
func GetProductDetail(c *gin.Context) {
	detailID, _ := strconv.Atoi(c.Param("detailId"))

	var detail models.ProductDetail
	if err := database.DB.First(&detail, detailID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product detail not found"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateProductDetail edits a variant; absent fields keep their value
func UpdateProductDetail(c *gin.Context) {
	detailID, _ := strconv.Atoi(c.Param("detailId"))

	var req struct {
		ColorName *models.LocalizedText `json:"colorName"`
		ColorCode *string               `json:"colorCode"`
		Quantity  *int                  `json:"quantity"`
		Picture   *string               `json:"picture"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	if req.ColorName != nil {
		if err := req.ColorName.WriteValidate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "colorName: " + err.Error()})
			return
		}
	}

	var detail models.ProductDetail
	if err := database.DB.First(&detail, detailID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product detail not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.ColorName != nil {
		updates["colorName"] = *req.ColorName
	}
	if req.ColorCode != nil {
		updates["colorCode"] = *req.ColorCode
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Picture != nil {
		updates["picture"] = *req.Picture
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&detail).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product detail"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Product detail updated successfully",
		"productDetail": detail,
	})
}

// DeleteProductDetail removes one variant
func DeleteProductDetail(c *gin.Context) {
	detailID, _ := strconv.Atoi(c.Param("detailId"))

	var detail models.ProductDetail
	if err := database.DB.First(&detail, detailID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product detail not found"})
		return
	}

	if err := database.DB.Delete(&detail).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product detail"})
		return
	}

	// Best-effort storage cleanup, the row is already gone
	if err := services.DeleteImage(detail.Picture); err != nil {
		log.Printf("Failed to delete picture from storage: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product detail deleted successfully"})
}
