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

// CreateService adds a service to the storefront catalog
func CreateService(c *gin.Context) {
	var req struct {
		Name        models.LocalizedText `json:"name" binding:"required"`
		Description models.LocalizedText `json:"description"`
		HighPrice   float64              `json:"highPrice"`
		LowPrice    float64              `json:"lowPrice"`
		Images      models.StringList    `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}

	if err := req.Name.WriteValidate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name: " + err.Error()})
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		HighPrice:   req.HighPrice,
		LowPrice:    req.LowPrice,
		Images:      req.Images,
	}
	if err := database.DB.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Service created successfully",
		"service": service,
	})
}

// UpdateService edits service fields; absent fields keep their value
func UpdateService(c *gin.Context) {
	serviceID, _ := strconv.Atoi(c.Param("serviceId"))

	var req struct {
		Name        *models.LocalizedText `json:"name"`
		Description *models.LocalizedText `json:"description"`
		HighPrice   *float64              `json:"highPrice"`
		LowPrice    *float64              `json:"lowPrice"`
		Images      *models.StringList    `json:"images"`
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

	var service models.Service
	if err := database.DB.First(&service, serviceID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.HighPrice != nil {
		updates["highPrice"] = *req.HighPrice
	}
	if req.LowPrice != nil {
		updates["lowPrice"] = *req.LowPrice
	}
	if req.Images != nil {
		updates["images"] = *req.Images
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&service).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update service"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service updated successfully",
		"service": service,
	})
}

// DeleteService removes a service. Existing service orders keep their
// serviceId reference (weak reference, no cascade).
func DeleteService(c *gin.Context) {
	serviceID, _ := strconv.Atoi(c.Param("serviceId"))

	var service models.Service
	if err := database.DB.First(&service, serviceID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
		return
	}

	if err := database.DB.Delete(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete service"})
		return
	}

	// Best-effort storage cleanup, the row is already gone
	for _, image := range service.Images {
		if err := services.DeleteImage(image); err != nil {
			log.Printf("Failed to delete image from storage: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
