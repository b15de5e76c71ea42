package routes

import (
	"restaurant-orders-api/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		// Order submission (front-of-house terminals)
		api.POST("/orders/dine-in", handlers.SubmitDineIn)
		api.POST("/orders/take-out", handlers.SubmitTakeOut)

		// Order lifecycle (kitchen staff)
		api.PUT("/orders/:id/status", handlers.AdvanceOrderStatus)
		api.DELETE("/orders/:id", handlers.DeleteOrder)

		// Queries
		api.GET("/orders", handlers.ListOrders)
		api.GET("/orders/recent", handlers.RecentOrders)
		api.GET("/kitchen", handlers.KitchenDashboard)

		// Analytics & reporting
		api.GET("/analytics", handlers.GetAnalytics)
		api.GET("/analytics/export", handlers.ExportOrdersCSV)

		// State machine info (great for docs/Postman)
		api.GET("/state-machine", handlers.GetStateMachineInfo)
	}
}
