package store

import (
	"net/http"
	"strconv"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"

	"github.com/gin-gonic/gin"
)

// GetProducts returns the catalog with all color variants preloaded
func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := database.DB.Preload("Details").Order(`"createdAt" DESC`).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct returns one product with its variants
func GetProduct(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("productId"))

	var product models.Product
	if err := database.DB.Preload("Details").First(&product, productID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetProductDetails returns the variants of one product
func GetProductDetails(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("productId"))

	var details []models.ProductDetail
	if err := database.DB.Where(`"productId" = ?`, productID).Find(&details).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product details"})
		return
	}

	c.JSON(http.StatusOK, details)
}

// GetServices returns all services newest-first
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := database.DB.Order(`"createdAt" DESC`).Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService returns one service
func GetService(c *gin.Context) {
	serviceID, _ := strconv.Atoi(c.Param("serviceId"))

	var service models.Service
	if err := database.DB.First(&service, serviceID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
		return
	}

	c.JSON(http.StatusOK, service)
}
