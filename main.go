package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/NadirSa01/zelije-backend/pkg/config"
	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/middleware"
	"github.com/NadirSa01/zelije-backend/pkg/routes"
	"github.com/NadirSa01/zelije-backend/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize database
	log.Println("🔌 Initializing database connection...")
	if err := database.InitDatabase(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.CloseDatabase()

	// Run migrations in development; production uses manual migrations
	if config.IsDevelopment() {
		if err := database.AutoMigrate(); err != nil {
			log.Printf("⚠️ Failed to run migrations: %v", err)
		}
	}

	// Initialize GCP Storage service
	if err := services.InitGCPStorage(); err != nil {
		log.Printf("⚠️  Warning: GCP Storage initialization failed: %v", err)
	} else {
		log.Println("✅ GCP Storage initialized successfully")
	}

	// Set Gin mode based on environment
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize Gin router
	router := gin.Default()

	// Recovery middleware for panic handling
	router.Use(middleware.RecoveryMiddleware())

	// Session middleware
	store := cookie.NewStore([]byte(config.AppConfig.SessionSecret))
	router.Use(sessions.Sessions("session", store))

	// CORS middleware
	setupCORS(router)

	// Multipart upload size limit
	router.MaxMultipartMemory = 10 << 20 // 10 MB

	// Routes
	setupRoutes(router)

	// Start server
	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: router,
	}

	// Server startup in goroutine
	go func() {
		log.Printf("🚀 Server running in %s mode\n", config.AppConfig.Environment)
		log.Printf("📡 Server listening on http://localhost:%s\n", config.AppConfig.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

// setupCORS configures the CORS middleware. Credentials are always allowed
// because the admin dashboard authenticates with an httpOnly cookie.
func setupCORS(router *gin.Engine) {
	isProduction := config.IsProduction()

	defaultOrigins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}

	var allowOrigins []string
	if isProduction && config.AppConfig.AllowedOrigins != "" {
		allowOrigins = parseOrigins(config.AppConfig.AllowedOrigins)
	} else {
		allowOrigins = defaultOrigins
	}

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Range", "X-Content-Range"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if isProduction {
		corsConfig.AllowOrigins = allowOrigins
	} else {
		// In development, trust any origin
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}

	router.Use(cors.New(corsConfig))

	if isProduction {
		log.Printf("🔒 CORS enabled for origins: %v\n", allowOrigins)
	} else {
		log.Println("🔓 CORS enabled for all origins (development mode)")
	}
}

// parseOrigins splits a comma-separated origin string
func parseOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setupRoutes sets up all application routes
func setupRoutes(router *gin.Engine) {
	// Root route
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Zelije Backend Server is running...")
	})

	// API routes group
	api := router.Group("/api")
	{
		// Public storefront routes
		routes.RegisterStoreRoutes(api)

		// Authentication routes
		routes.RegisterAuthRoutes(api)

		// Back-office routes
		routes.RegisterAdminRoutes(api)

		// Health check route
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":      "ok",
				"environment": config.AppConfig.Environment,
				"database":    "connected",
			})
		})
	}

	router.NoRoute(middleware.NotFoundHandler())
}
