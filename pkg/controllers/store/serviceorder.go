package store

import (
	"errors"
	"net/http"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errServiceNotFound = errors.New("service not found")

// CreateServiceOrder handles a storefront service request. The Client and the
// ServiceOrder are created inside one transaction; an unknown serviceId aborts
// both. New service orders always start PENDING with price 0 - the price is
// negotiated later by an admin.
func CreateServiceOrder(c *gin.Context) {
	var req struct {
		ClientData struct {
			FullName  string `json:"fullName" binding:"required"`
			Telephone string `json:"telephone" binding:"required"`
			Address   string `json:"address" binding:"required"`
			City      string `json:"city" binding:"required"`
		} `json:"clientData" binding:"required"`
		ServiceID   int    `json:"serviceId" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid input: clientData and serviceId are required",
		})
		return
	}

	var created models.ServiceOrder

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if err := tx.First(&service, req.ServiceID).Error; err != nil {
			return errServiceNotFound
		}

		client := models.Client{
			FullName:  req.ClientData.FullName,
			Telephone: req.ClientData.Telephone,
			Address:   req.ClientData.Address,
			City:      req.ClientData.City,
		}
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		created = models.ServiceOrder{
			ClientID:    client.ID,
			ServiceID:   req.ServiceID,
			Description: req.Description,
			State:       models.OrderStatePending,
			Price:       0,
		}
		return tx.Create(&created).Error
	})

	if err != nil {
		if errors.Is(err, errServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create service order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Service order created successfully",
		"serviceOrder": gin.H{
			"id":          created.ID,
			"state":       created.State,
			"price":       created.Price,
			"description": created.Description,
			"createdAt":   created.CreatedAt,
		},
	})
}
