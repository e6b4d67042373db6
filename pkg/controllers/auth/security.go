package auth

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"net/http"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/middleware"
	"github.com/NadirSa01/zelije-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

// Generate2FASetup creates a TOTP secret for the authenticated admin and
// returns the otpauth URL plus a QR code. The secret is stored but 2FA stays
// disabled until Enable2FA verifies a token.
func Generate2FASetup(c *gin.Context) {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Zelije Admin",
		AccountName: admin.Email,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate 2FA key"})
		return
	}

	secret := key.Secret()
	if err := database.DB.Model(&admin).Update("twoFactorSecret", secret).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save 2FA secret"})
		return
	}

	var buf bytes.Buffer
	img, err := key.Image(200, 200)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate QR code"})
		return
	}
	png.Encode(&buf, img)

	c.JSON(http.StatusOK, gin.H{
		"message":    "2FA setup generated",
		"secret":     secret,
		"otpAuthUrl": key.URL(),
		"qrCode":     "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}

// Enable2FA turns two-factor on after verifying a token against the stored secret
func Enable2FA(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token is required"})
		return
	}

	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	// Re-read the row: the context copy may predate Generate2FASetup
	if err := database.DB.First(&admin, admin.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
		return
	}

	if admin.TwoFactorSecret == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "2FA setup not initiated"})
		return
	}

	if !totp.Validate(req.Token, *admin.TwoFactorSecret) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid 2FA token"})
		return
	}

	if err := database.DB.Model(&admin).Update("twoFactorEnabled", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to enable 2FA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "2FA enabled successfully"})
}

// Disable2FA turns two-factor off after re-checking the password
func Disable2FA(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Current password is required"})
		return
	}

	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	if err := utils.ComparePassword(admin.Password, req.CurrentPassword); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
		return
	}

	updates := map[string]interface{}{
		"twoFactorEnabled": false,
		"twoFactorSecret":  nil,
	}
	if err := database.DB.Model(&admin).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to disable 2FA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "2FA disabled successfully"})
}
