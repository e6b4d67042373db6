package store

import (
	"errors"
	"net/http"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errProductNotFound = errors.New("product not found")

// CreateOrder handles a storefront checkout. Client, Order and all OrderLines
// are created inside one transaction: an unknown productId on any line aborts
// the whole creation and leaves no partial rows behind. Each line's price is
// snapshotted from the current Product.Price and never recomputed afterwards.
func CreateOrder(c *gin.Context) {
	var req struct {
		FullName  string `json:"fullName" binding:"required"`
		Telephone string `json:"telephone" binding:"required"`
		Address   string `json:"address" binding:"required"`
		City      string `json:"city" binding:"required"`
		Lines     []struct {
			ProductID       int `json:"productId" binding:"required"`
			ProductDetailID int `json:"productDetailId" binding:"required"`
			Quantity        int `json:"quantity" binding:"required"`
		} `json:"lines" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || len(req.Lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid input: fullName, telephone, address, city and at least one line are required",
		})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		client := models.Client{
			FullName:  req.FullName,
			Telephone: req.Telephone,
			Address:   req.Address,
			City:      req.City,
		}
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		order := models.Order{
			ClientID: client.ID,
			State:    models.OrderStatePending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range req.Lines {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				return errProductNotFound
			}

			orderLine := models.OrderLine{
				OrderID:         order.ID,
				ProductID:       line.ProductID,
				ProductDetailID: line.ProductDetailID,
				Quantity:        line.Quantity,
				Price:           product.Price,
			}
			if err := tx.Create(&orderLine).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, errProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully"})
}
