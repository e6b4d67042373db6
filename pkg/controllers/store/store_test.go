package store

import (
	"testing"

	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Create DB connection for tests
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal("failed to connect to test database: " + err.Error())
	}

	err = db.AutoMigrate(
		&models.Client{},
		&models.Admin{},
		&models.Product{},
		&models.ProductDetail{},
		&models.Service{},
		&models.Order{},
		&models.OrderLine{},
		&models.ServiceOrder{},
		&models.Message{},
	)
	if err != nil {
		t.Fatal("failed to migrate test database: " + err.Error())
	}

	database.DB = db
	return db
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/products", GetProducts)
	router.GET("/products/:productId", GetProduct)
	router.GET("/product-details/:productId", GetProductDetails)
	router.GET("/services", GetServices)
	router.GET("/services/:serviceId", GetService)
	router.POST("/order", CreateOrder)
	router.POST("/service-order", CreateServiceOrder)
	router.POST("/message", CreateMessage)

	return router
}

func seedProduct(t *testing.T, db *gorm.DB, price float64) models.Product {
	product := models.Product{
		Name:  models.LocalizedText{En: "Star Tile", Fr: "Carreau étoile", Ar: "بلاط نجمة"},
		Price: price,
		Size:  "10x10",
		Details: []models.ProductDetail{
			{
				ColorName: models.LocalizedText{En: "Cobalt", Fr: "Cobalt", Ar: "كوبالت"},
				ColorCode: "#1F4FA3",
				Quantity:  50,
				Picture:   "https://example.com/cobalt.jpg",
			},
		},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatal("failed to seed product: " + err.Error())
	}
	return product
}

func seedService(t *testing.T, db *gorm.DB) models.Service {
	service := models.Service{
		Name:        models.LocalizedText{En: "Fountain", Fr: "Fontaine", Ar: "نافورة"},
		Description: models.LocalizedText{En: "Custom fountain", Fr: "Fontaine sur mesure", Ar: "نافورة مخصصة"},
		LowPrice:    800,
		HighPrice:   3500,
		Images:      models.StringList{"https://example.com/fountain.jpg"},
	}
	if err := db.Create(&service).Error; err != nil {
		t.Fatal("failed to seed service: " + err.Error())
	}
	return service
}
