package routes

import (
	cartControllers "github.com/afnankhn654-alt/ShopNest/controllers/cart"
	chatControllers "github.com/afnankhn654-alt/ShopNest/controllers/chat"
	userControllers "github.com/afnankhn654-alt/ShopNest/controllers/user"
	"github.com/afnankhn654-alt/ShopNest/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers the per-session endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	validate := middleware.ValidateToken(d.Issuer, d.Sessions)

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(validate)
	{
		cartGroup.GET("", cartControllers.GetCart())                    // GET /cart
		cartGroup.POST("", cartControllers.AddCartItem(d.Store))        // POST /cart
		cartGroup.PUT("/:line_id", cartControllers.UpdateCartItem())    // PUT /cart/:line_id
		cartGroup.DELETE("/:line_id", cartControllers.DeleteCartItem()) // DELETE /cart/:line_id
		cartGroup.DELETE("", cartControllers.ClearCart())               // DELETE /cart
	}

	// ──────────────── Chat Assistant ────────────────
	chatGroup := r.Group("/chat")
	chatGroup.Use(validate)
	{
		chatGroup.GET("", chatControllers.GetTranscript())           // GET /chat
		chatGroup.POST("", chatControllers.SendMessage(d.Assistant)) // POST /chat
	}

	// ──────────────── User Profile ────────────────
	userGroup := r.Group("/user")
	userGroup.Use(validate, middleware.RequireUser)
	{
		userGroup.GET("/", userControllers.GetUser(d.Store)) // GET /user/

		addresses := userGroup.Group("/addresses")
		{
			addresses.GET("", userControllers.GetAddresses(d.Store))                   // GET /user/addresses
			addresses.POST("", userControllers.AddAddress(d.Store))                    // POST /user/addresses
			addresses.PUT("/:id", userControllers.UpdateAddress(d.Store))              // PUT /user/addresses/:id
			addresses.DELETE("/:id", userControllers.DeleteAddress(d.Store))           // DELETE /user/addresses/:id
			addresses.POST("/:id/default", userControllers.SetDefaultAddress(d.Store)) // POST /user/addresses/:id/default
		}
	}
}
