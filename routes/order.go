package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/shopstack/ecommerce-api/controllers/order"
	"github.com/shopstack/ecommerce-api/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")

	// websocket endpoint for real-time order updates
	orders.GET("/ws", orderControllers.OrderWebSocketHandler)

	orders.Use(middleware.ValidateToken)
	{
		// Place a new order
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Fetch the caller's orders
		orders.GET("", orderControllers.GetUserOrdersHandler(db))
	}
}
