package admin

import (
	"net/http"
	"strconv"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"

	"github.com/gin-gonic/gin"
)

// GetMessages returns all messages newest-first with the sender embedded
func GetMessages(c *gin.Context) {
	var messages []models.Message
	if err := database.DB.
		Preload("Client").
		Order(`"createdAt" DESC`).
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetMessage returns one message and marks it seen on first fetch.
// The status flag only ever moves false to true.
func GetMessage(c *gin.Context) {
	messageID, _ := strconv.Atoi(c.Param("messageId"))

	var message models.Message
	if err := database.DB.Preload("Client").First(&message, messageID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}

	if !message.Status {
		if err := database.DB.Model(&message).Update("status", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to mark message as seen"})
			return
		}
	}

	c.JSON(http.StatusOK, message)
}

// DeleteMessage removes one message, 404 if absent
func DeleteMessage(c *gin.Context) {
	messageID, _ := strconv.Atoi(c.Param("messageId"))

	var message models.Message
	if err := database.DB.First(&message, messageID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}

	if err := database.DB.Delete(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
