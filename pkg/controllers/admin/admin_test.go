package admin

import (
	"testing"
	"time"

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

// setupRouter registers the admin handlers without the auth middleware so
// tests exercise the handlers directly
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/orders", GetOrders)
	router.GET("/order/:orderId", GetOrder)
	router.PUT("/order/state/:orderId", UpdateOrderState)
	router.PUT("/order/quantity/:orderLineId", UpdateOrderQuantity)
	router.PUT("/order/full/:orderId", FullUpdateOrder)
	router.DELETE("/order/:orderId", DeleteOrder)

	router.GET("/orders/metrics", GetIncomeInRange)
	router.GET("/orders/metrics/:startDate/:endDate", GetIncomeInRange)
	router.GET("/orders/chart/:startDate/:endDate", GetOrdersChart)

	router.GET("/service-order", GetServiceOrders)
	router.GET("/service-order/:orderId", GetServiceOrder)
	router.PUT("/service-order/price/:orderId", UpdateServiceOrderPrice)
	router.PUT("/service-order/s/:orderId", UpdateServiceOrderState)
	router.PUT("/service-order/full/:orderId", FullUpdateServiceOrder)
	router.DELETE("/service-order/:orderId", DeleteServiceOrder)

	router.GET("/messages", GetMessages)
	router.GET("/message/:messageId", GetMessage)
	router.DELETE("/message/:messageId", DeleteMessage)

	return router
}

func seedClient(t *testing.T, db *gorm.DB) models.Client {
	client := models.Client{
		FullName:  "Amina Berrada",
		Telephone: "0661234567",
		Address:   "12 Rue des Consuls",
		City:      "Rabat",
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatal("failed to seed client: " + err.Error())
	}
	return client
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

func seedOrder(t *testing.T, db *gorm.DB, client models.Client, state models.OrderState) models.Order {
	order := models.Order{
		ClientID: client.ID,
		State:    state,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatal("failed to seed order: " + err.Error())
	}
	return order
}

func seedOrderLine(t *testing.T, db *gorm.DB, order models.Order, product models.Product, quantity int) models.OrderLine {
	line := models.OrderLine{
		OrderID:         order.ID,
		ProductID:       product.ID,
		ProductDetailID: product.Details[0].ID,
		Quantity:        quantity,
		Price:           product.Price,
	}
	if err := db.Create(&line).Error; err != nil {
		t.Fatal("failed to seed order line: " + err.Error())
	}
	return line
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

func seedServiceOrder(t *testing.T, db *gorm.DB, client models.Client, service models.Service, state models.OrderState, price float64) models.ServiceOrder {
	serviceOrder := models.ServiceOrder{
		ClientID:    client.ID,
		ServiceID:   service.ID,
		Description: "Courtyard fountain",
		State:       state,
		Price:       price,
	}
	if err := db.Create(&serviceOrder).Error; err != nil {
		t.Fatal("failed to seed service order: " + err.Error())
	}
	return serviceOrder
}

// setCreatedAt backdates a row so range queries can be tested deterministically
func setCreatedAt(t *testing.T, db *gorm.DB, model interface{}, id int, at time.Time) {
	if err := db.Model(model).Where("id = ?", id).Update("createdAt", at).Error; err != nil {
		t.Fatal("failed to set createdAt: " + err.Error())
	}
}

func mustParseTime(t *testing.T, value string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		t.Fatal("failed to parse time: " + err.Error())
	}
	return parsed
}
