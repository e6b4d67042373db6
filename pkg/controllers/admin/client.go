package admin

import (
	"net/http"
	"strconv"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"

	"github.com/gin-gonic/gin"
)

// CreateClient adds a client record directly from the back office
func CreateClient(c *gin.Context) {
	var req struct {
		FullName  string `json:"fullName" binding:"required"`
		Telephone string `json:"telephone" binding:"required"`
		Address   string `json:"address"`
		City      string `json:"city"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "fullName and telephone are required"})
		return
	}

	client := models.Client{
		FullName:  req.FullName,
		Telephone: req.Telephone,
		Address:   req.Address,
		City:      req.City,
	}
	if err := database.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create client"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Client created successfully",
		"client":  client,
	})
}

// GetClients returns all clients newest-first
func GetClients(c *gin.Context) {
	var clients []models.Client
	if err := database.DB.Order(`"createdAt" DESC`).Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch clients"})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient returns one client, 404 if absent
func GetClient(c *gin.Context) {
	clientID, _ := strconv.Atoi(c.Param("clientId"))

	var client models.Client
	if err := database.DB.First(&client, clientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient edits client fields; absent fields keep their current value
func UpdateClient(c *gin.Context) {
	clientID, _ := strconv.Atoi(c.Param("clientId"))

	var req struct {
		FullName  *string `json:"fullName"`
		Telephone *string `json:"telephone"`
		Address   *string `json:"address"`
		City      *string `json:"city"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	var client models.Client
	if err := database.DB.First(&client, clientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Client not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["fullName"] = *req.FullName
	}
	if req.Telephone != nil {
		updates["telephone"] = *req.Telephone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&client).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update client"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Client updated successfully",
		"client":  client,
	})
}

// DeleteClient removes a client. Orders, service orders and messages that
// reference the client are left in place (weak references, no cascade).
func DeleteClient(c *gin.Context) {
	clientID, _ := strconv.Atoi(c.Param("clientId"))

	var client models.Client
	if err := database.DB.First(&client, clientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Client not found"})
		return
	}

	if err := database.DB.Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
