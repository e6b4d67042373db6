package main

import (
	"log"

	"github.com/NadirSa01/zelije-backend/pkg/config"
	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"
	"github.com/NadirSa01/zelije-backend/pkg/utils"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.CloseDatabase()

	if err := database.AutoMigrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	seedAdmin()
	seedProducts()
	seedServices()
}

func seedAdmin() {
	email := "admin@zelije.com"
	password := "admin123"

	var admin models.Admin
	if err := database.DB.Where("email = ?", email).First(&admin).Error; err == nil {
		log.Printf("Admin %s already exists", email)
		return
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.Admin{
		FullName: "Zelije Admin",
		Email:    email,
		Password: hashedPassword,
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Printf("✅ Admin %s created successfully", email)
}

func seedProducts() {
	var count int64
	database.DB.Model(&models.Product{}).Count(&count)
	if count > 0 {
		log.Printf("Products already seeded (%d rows)", count)
		return
	}

	products := []models.Product{
		{
			Name:  models.LocalizedText{En: "Zellige Star Tile", Fr: "Carreau étoile zellige", Ar: "بلاط نجمة الزليج"},
			Price: 24.5,
			Size:  "10x10",
			Details: []models.ProductDetail{
				{
					ColorName: models.LocalizedText{En: "Cobalt Blue", Fr: "Bleu cobalt", Ar: "أزرق كوبالت"},
					ColorCode: "#1F4FA3",
					Quantity:  120,
					Picture:   "https://storage.googleapis.com/zelije-demo/star-cobalt.jpg",
				},
				{
					ColorName: models.LocalizedText{En: "Emerald", Fr: "Émeraude", Ar: "زمردي"},
					ColorCode: "#0E7A4D",
					Quantity:  80,
					Picture:   "https://storage.googleapis.com/zelije-demo/star-emerald.jpg",
				},
			},
		},
		{
			Name:  models.LocalizedText{En: "Bejmat Brick", Fr: "Brique bejmat", Ar: "طوب البجماط"},
			Price: 12,
			Size:  "15x5",
			Details: []models.ProductDetail{
				{
					ColorName: models.LocalizedText{En: "Natural", Fr: "Naturel", Ar: "طبيعي"},
					ColorCode: "#C8A165",
					Quantity:  300,
					Picture:   "https://storage.googleapis.com/zelije-demo/bejmat-natural.jpg",
				},
			},
		},
	}

	for i := range products {
		if err := database.DB.Create(&products[i]).Error; err != nil {
			log.Fatal("Failed to seed products:", err)
		}
	}

	log.Printf("✅ Seeded %d products", len(products))
}

func seedServices() {
	var count int64
	database.DB.Model(&models.Service{}).Count(&count)
	if count > 0 {
		log.Printf("Services already seeded (%d rows)", count)
		return
	}

	services := []models.Service{
		{
			Name:        models.LocalizedText{En: "Fountain Installation", Fr: "Installation de fontaine", Ar: "تركيب نافورة"},
			Description: models.LocalizedText{En: "Custom zellige fountain built on site", Fr: "Fontaine en zellige construite sur place", Ar: "نافورة زليج مخصصة تبنى في الموقع"},
			LowPrice:    800,
			HighPrice:   3500,
			Images:      models.StringList{"https://storage.googleapis.com/zelije-demo/fountain.jpg"},
		},
		{
			Name:        models.LocalizedText{En: "Wall Cladding", Fr: "Revêtement mural", Ar: "تكسية الجدران"},
			Description: models.LocalizedText{En: "Interior wall covering with traditional tiles", Fr: "Revêtement mural intérieur en carreaux traditionnels", Ar: "تغطية الجدران الداخلية بالبلاط التقليدي"},
			LowPrice:    150,
			HighPrice:   900,
			Images:      models.StringList{"https://storage.googleapis.com/zelije-demo/cladding.jpg"},
		},
	}

	for i := range services {
		if err := database.DB.Create(&services[i]).Error; err != nil {
			log.Fatal("Failed to seed services:", err)
		}
	}

	log.Printf("✅ Seeded %d services", len(services))
}
