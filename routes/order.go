package routes

import (
	orderControllers "github.com/afnankhn654-alt/ShopNest/controllers/order"
	"github.com/afnankhn654-alt/ShopNest/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(r *gin.Engine, d Deps) {
	orders := r.Group("/orders")
	{
		// websocket endpoint for live review updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler(d.Hub))

		signed := orders.Group("")
		signed.Use(middleware.ValidateToken(d.Issuer, d.Sessions))
		{
			// Fetch all orders
			signed.GET("", orderControllers.GetOrdersHandler(d.Store))

			// Fetch one order
			signed.GET("/:order_id", orderControllers.GetOrderByIDHandler(d.Store))

			// Review a delivered line
			signed.POST("/:order_id/reviews", middleware.RequireUser, orderControllers.SubmitReviewHandler(d.Store))
		}
	}
}
