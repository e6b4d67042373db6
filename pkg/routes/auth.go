package routes

import (
	"github.com/NadirSa01/zelije-backend/pkg/controllers/auth"
	"github.com/NadirSa01/zelije-backend/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers all authentication routes
func RegisterAuthRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", auth.AdminSignup)
		authGroup.POST("/signin", auth.AdminSignIn)
		authGroup.POST("/signout", auth.SignOut)

		// Protected routes
		authGroup.GET("/me", middleware.AuthenticateToken(), auth.CheckAuth)

		// Two-factor management
		authGroup.POST("/2fa/setup", middleware.AuthenticateToken(), auth.Generate2FASetup)
		authGroup.POST("/2fa/enable", middleware.AuthenticateToken(), auth.Enable2FA)
		authGroup.POST("/2fa/disable", middleware.AuthenticateToken(), auth.Disable2FA)

		// Admin account management
		authGroup.GET("/admins", middleware.AuthenticateToken(), middleware.RestrictToAdmin(), auth.GetAdmins)
		authGroup.DELETE("/admins/:adminId", middleware.AuthenticateToken(), middleware.RestrictToAdmin(), auth.DeleteAdmin)
	}
}
