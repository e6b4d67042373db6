package routes

import (
	adminctl "github.com/NadirSa01/zelije-backend/pkg/controllers/admin"
	"github.com/NadirSa01/zelije-backend/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the back-office routes. Every route requires
// an authenticated admin.
//
// Note the static middle segments on the PUT update variants (state/,
// quantity/, full/, price/, s/): Gin's router cannot mix a wildcard segment
// with static siblings under the same prefix, so each variant gets its own
// static branch.
func RegisterAdminRoutes(router *gin.RouterGroup) {
	adminGroup := router.Group("")
	adminGroup.Use(middleware.AuthenticateToken(), middleware.RestrictToAdmin())
	{
		// Product orders
		adminGroup.GET("/orders", adminctl.GetOrders)
		adminGroup.GET("/order/:orderId", adminctl.GetOrder)
		adminGroup.PUT("/order/state/:orderId", adminctl.UpdateOrderState)
		adminGroup.PUT("/order/quantity/:orderLineId", adminctl.UpdateOrderQuantity)
		adminGroup.PUT("/order/full/:orderId", adminctl.FullUpdateOrder)
		adminGroup.DELETE("/order/:orderId", adminctl.DeleteOrder)

		// Dashboard metrics
		adminGroup.GET("/orders/metrics", adminctl.GetIncomeInRange)
		adminGroup.GET("/orders/metrics/:startDate/:endDate", adminctl.GetIncomeInRange)
		adminGroup.GET("/orders/chart/:startDate/:endDate", adminctl.GetOrdersChart)

		// Service orders
		adminGroup.GET("/service-order", adminctl.GetServiceOrders)
		adminGroup.GET("/service-order/:orderId", adminctl.GetServiceOrder)
		adminGroup.PUT("/service-order/price/:orderId", adminctl.UpdateServiceOrderPrice)
		adminGroup.PUT("/service-order/s/:orderId", adminctl.UpdateServiceOrderState)
		adminGroup.PUT("/service-order/full/:orderId", adminctl.FullUpdateServiceOrder)
		adminGroup.DELETE("/service-order/:orderId", adminctl.DeleteServiceOrder)

		// Clients
		adminGroup.POST("/client", adminctl.CreateClient)
		adminGroup.GET("/clients", adminctl.GetClients)
		adminGroup.GET("/client/:clientId", adminctl.GetClient)
		adminGroup.PUT("/client/:clientId", adminctl.UpdateClient)
		adminGroup.DELETE("/client/:clientId", adminctl.DeleteClient)

		// Products
		adminGroup.POST("/product", adminctl.CreateProduct)
		adminGroup.PUT("/product/:productId", adminctl.UpdateProduct)
		adminGroup.DELETE("/product/:productId", adminctl.DeleteProduct)

		// Product details (color variants)
		adminGroup.POST("/product-detail", adminctl.CreateProductDetail)
		adminGroup.GET("/product-detail/:detailId", adminctl.GetProductDetail)
		adminGroup.PUT("/product-detail/:detailId", adminctl.UpdateProductDetail)
		adminGroup.DELETE("/product-detail/:detailId", adminctl.DeleteProductDetail)

		// Services
		adminGroup.POST("/service", adminctl.CreateService)
		adminGroup.PUT("/service/:serviceId", adminctl.UpdateService)
		adminGroup.DELETE("/service/:serviceId", adminctl.DeleteService)

		// Messages
		adminGroup.GET("/messages", adminctl.GetMessages)
		adminGroup.GET("/message/:messageId", adminctl.GetMessage)
		adminGroup.DELETE("/message/:messageId", adminctl.DeleteMessage)

		// Media upload
		adminGroup.POST("/upload", adminctl.UploadImage)
	}
}
