package database

import (
	"fmt"
	"log"

	"github.com/NadirSa01/zelije-backend/pkg/config"
	"github.com/NadirSa01/zelije-backend/pkg/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// QuotedNamingStrategy wraps the default naming strategy and quotes all identifiers
// so PostgreSQL keeps the case-sensitive camelCase column names defined in the models
type QuotedNamingStrategy struct {
	schema.NamingStrategy
}

// ColumnName quotes column names for PostgreSQL case-sensitivity
func (q QuotedNamingStrategy) ColumnName(table, column string) string {
	return fmt.Sprintf("\"%s\"", q.NamingStrategy.ColumnName(table, column))
}

// TableName quotes table names
func (q QuotedNamingStrategy) TableName(table string) string {
	return fmt.Sprintf("\"%s\"", q.NamingStrategy.TableName(table))
}

// InitDatabase initializes the database connection
func InitDatabase() error {
	var err error

	gormConfig := &gorm.Config{
		PrepareStmt: false,
		NamingStrategy: QuotedNamingStrategy{
			schema.NamingStrategy{
				SingularTable: false,
			},
		},
	}

	// Development mode - verbose logging
	if config.IsDevelopment() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		// Production mode - only errors
		gormConfig.Logger = logger.Default.LogMode(logger.Error)
	}

	// Connect to PostgreSQL with implicit prepared statements disabled
	DB, err = gorm.Open(postgres.New(postgres.Config{
		DSN:                  config.AppConfig.DatabaseURL,
		PreferSimpleProtocol: true,
	}), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL database
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	log.Println("✅ Database connection established")

	return nil
}

// AutoMigrate runs auto-migration for all models
func AutoMigrate() error {
	log.Println("🔄 Running database migrations...")

	err := DB.AutoMigrate(
		// Core entities
		&models.Client{},
		&models.Admin{},

		// Catalog
		&models.Product{},
		&models.ProductDetail{},
		&models.Service{},

		// Orders
		&models.Order{},
		&models.OrderLine{},
		&models.ServiceOrder{},

		// Messaging
		&models.Message{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("✅ Database migrations completed")

	// Create indexes used by the list and aggregation queries
	createIndexes()

	return nil
}

// createIndexes creates additional indexes
func createIndexes() {
	log.Println("🔄 Creating additional indexes...")

	DB.Exec(`CREATE INDEX IF NOT EXISTS "OrderLine_orderId_idx" ON "OrderLine"("orderId")`)
	DB.Exec(`CREATE INDEX IF NOT EXISTS "OrderLine_createdAt_idx" ON "OrderLine"("createdAt")`)
	DB.Exec(`CREATE INDEX IF NOT EXISTS "Order_createdAt_idx" ON "Order"("createdAt")`)
	DB.Exec(`CREATE INDEX IF NOT EXISTS "ServiceOrder_createdAt_idx" ON "ServiceOrder"("createdAt")`)
	DB.Exec(`CREATE INDEX IF NOT EXISTS "ProductDetail_productId_idx" ON "ProductDetail"("productId")`)
	DB.Exec(`CREATE INDEX IF NOT EXISTS "Message_status_idx" ON "Message"("status")`)

	log.Println("✅ Additional indexes created")
}

// CloseDatabase closes the database connection
func CloseDatabase() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("✅ Database connection closed")
	}
}
