package middleware

import (
	"net/http"
	"strings"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"
	"github.com/NadirSa01/zelije-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthenticateToken reads the signed token from the httpOnly cookie or the
// Authorization header, verifies it and loads the Admin row into the context.
func AuthenticateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from cookie or Authorization header
		token := ""

		// Check cookie first
		if cookieToken, err := c.Cookie("token"); err == nil && cookieToken != "" {
			token = cookieToken
		}

		// If not in cookie, check Authorization header
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					token = parts[1]
				}
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(token)
		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Token expired."})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token."})
			}
			c.Abort()
			return
		}

		var admin models.Admin
		if err := database.DB.First(&admin, claims.ID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token. Admin not found."})
			c.Abort()
			return
		}

		// Set admin in context
		c.Set("admin", admin)

		c.Next()
	}
}

// RestrictToAdmin - gate for the back-office route tree. Must run after
// AuthenticateToken, which loads the admin into the context.
func RestrictToAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentAdmin(c); !ok {
			c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentAdmin extracts the authenticated admin from the context
func CurrentAdmin(c *gin.Context) (models.Admin, bool) {
	adminInterface, exists := c.Get("admin")
	if !exists {
		return models.Admin{}, false
	}
	admin, ok := adminInterface.(models.Admin)
	return admin, ok
}
