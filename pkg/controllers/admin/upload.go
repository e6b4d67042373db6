package admin

import (
	"net/http"

	"github.com/NadirSa01/zelije-backend/pkg/services"

	"github.com/gin-gonic/gin"
)

// UploadImage streams the multipart "image" field to object storage and
// echoes the resulting public URL. File contents are never inspected here.
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	url, err := services.UploadImageFromReader(file, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"url":     url,
	})
}
