package store

import (
	"net/http"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateMessage handles a contact-form submission. A Client is created for
// every submission (no dedup by telephone) together with the linked Message,
// which starts unseen (status=false).
func CreateMessage(c *gin.Context) {
	var req struct {
		FullName  string `json:"fullName" binding:"required"`
		Telephone string `json:"telephone" binding:"required"`
		Address   string `json:"address"`
		City      string `json:"city"`
		Subject   string `json:"subject" binding:"required"`
		Message   string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid input: fullName, telephone, subject and message are required",
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

		message := models.Message{
			ClientID: client.ID,
			Subject:  req.Subject,
			Message:  req.Message,
			Status:   false,
		}
		return tx.Create(&message).Error
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}
