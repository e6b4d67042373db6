package routes

import (
	"github.com/NadirSa01/zelije-backend/pkg/controllers/store"

	"github.com/gin-gonic/gin"
)

// RegisterStoreRoutes registers the public storefront routes. No auth here:
// visitors browse the catalog and submit orders anonymously.
func RegisterStoreRoutes(router *gin.RouterGroup) {
	// Catalog browsing
	router.GET("/products", store.GetProducts)
	router.GET("/products/:productId", store.GetProduct)
	router.GET("/product-details/:productId", store.GetProductDetails)
	router.GET("/services", store.GetServices)
	router.GET("/services/:serviceId", store.GetService)

	// Checkout and contact
	router.POST("/order", store.CreateOrder)
	router.POST("/service-order", store.CreateServiceOrder)
	router.POST("/message", store.CreateMessage)
}
