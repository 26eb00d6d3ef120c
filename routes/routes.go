package routes

import (
	"github.com/afnankhn654-alt/ShopNest/auth"
	"github.com/afnankhn654-alt/ShopNest/chatbot"
	orderControllers "github.com/afnankhn654-alt/ShopNest/controllers/order"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps is everything the route groups need.
type Deps struct {
	Store     *store.Store
	Sessions  *store.Sessions
	Issuer    *auth.TokenIssuer
	Assistant *chatbot.Assistant
	Hub       *orderControllers.Hub
	APIKey    string
	Logger    *zap.Logger
}

// SetupRoutes is the single entry‐point that wires up every route group.
func SetupRoutes(r *gin.Engine, d Deps) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	// 1️⃣ Public catalog routes (no middleware)
	SetupCatalogRoutes(r, d)

	// 2️⃣ Auth + session routes (guest token issued here)
	SetupAuthRoutes(r, d)

	// 3️⃣ Session routes (JWT‐protected): cart, chat, profile
	SetupUserRoutes(r, d)

	// 4️⃣ Order routes
	SetupOrderRoutes(r, d)

	// 5️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, d)
}
