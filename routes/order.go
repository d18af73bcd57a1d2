package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mosisn/onlineshop/config"
	orderControllers "github.com/mosisn/onlineshop/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	orders := r.Group("/orders")
	{
		// Checkout: create a new order with its items
		orders.POST("", orderControllers.PlaceOrderHandler(db, cfg))

		// Fetch a single order
		orders.GET("/:orderID", orderControllers.GetOrderHandler(db, cfg))

		// Fetch orders for a specific user
		orders.GET("/user/:userID", orderControllers.GetUserOrdersHandler(db, cfg))

		// Update order status (e.g., shipped, cancelled)
		orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db, cfg))

		// Delete an order
		orders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
	}
}
