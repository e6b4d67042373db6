package auth

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/NadirSa01/zelije-backend/pkg/config"
	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/middleware"
	"github.com/NadirSa01/zelije-backend/pkg/models"
	"github.com/NadirSa01/zelije-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

// AdminSignup registers a back-office account
func AdminSignup(c *gin.Context) {
	var req struct {
		FullName       string `json:"fullName" binding:"required"`
		Email          string `json:"email" binding:"required,email"`
		Password       string `json:"password" binding:"required"`
		RetypePassword string `json:"retypePassword" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Full name, email, password and retype password are required"})
		return
	}

	if req.Password != req.RetypePassword {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Passwords do not match"})
		return
	}

	if err := utils.CheckPasswordStrength(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existingAdmin models.Admin
	if err := database.DB.Where("email = ?", email).First(&existingAdmin).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Admin already exists"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	admin := models.Admin{
		FullName: req.FullName,
		Email:    email,
		Password: hashedPassword,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	setTokenCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin created successfully",
		"admin": gin.H{
			"id":       admin.ID,
			"fullName": admin.FullName,
			"email":    admin.Email,
		},
	})
}

// AdminSignIn authenticates an admin with email + password, plus a TOTP code
// when two-factor is enabled on the account
func AdminSignIn(c *gin.Context) {
	var req struct {
		Email    string  `json:"email" binding:"required,email"`
		Password string  `json:"password" binding:"required"`
		Token    *string `json:"token"` // TOTP code, required when 2FA enabled
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin models.Admin
	if err := database.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if err := utils.ComparePassword(admin.Password, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if admin.TwoFactorEnabled {
		if req.Token == nil || *req.Token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message":     "2FA token required",
				"requires2FA": true,
			})
			return
		}
		if admin.TwoFactorSecret == nil || !totp.Validate(*req.Token, *admin.TwoFactorSecret) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid 2FA token"})
			return
		}
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	setTokenCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed in successfully",
		"admin": gin.H{
			"id":               admin.ID,
			"fullName":         admin.FullName,
			"email":            admin.Email,
			"twoFactorEnabled": admin.TwoFactorEnabled,
		},
	})
}

// SignOut clears the session cookie
func SignOut(c *gin.Context) {
	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		config.AppConfig.CookieSecure == "true",
		true,
	)

	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

// CheckAuth returns the authenticated admin attached by the middleware
func CheckAuth(c *gin.Context) {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               admin.ID,
		"fullName":         admin.FullName,
		"email":            admin.Email,
		"twoFactorEnabled": admin.TwoFactorEnabled,
		"createdAt":        admin.CreatedAt,
	})
}

// GetAdmins lists all back-office accounts
func GetAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := database.DB.
		Select(`id, "fullName", email, "twoFactorEnabled", "createdAt"`).
		Order(`"createdAt" DESC`).
		Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch admins"})
		return
	}

	c.JSON(http.StatusOK, admins)
}

// DeleteAdmin removes a back-office account. Self-deletion is rejected.
func DeleteAdmin(c *gin.Context) {
	adminID, _ := strconv.Atoi(c.Param("adminId"))

	current, ok := middleware.CurrentAdmin(c)
	if ok && current.ID == adminID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Cannot delete your own account"})
		return
	}

	var admin models.Admin
	if err := database.DB.First(&admin, adminID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
		return
	}

	if err := database.DB.Delete(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete admin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}

// setTokenCookie attaches the signed token as an httpOnly cookie
func setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(
		"token",
		token,
		7*24*60*60, // 7 days
		"/",
		"",
		config.AppConfig.CookieSecure == "true",
		true, // httpOnly
	)
}
