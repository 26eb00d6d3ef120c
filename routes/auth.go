package routes

import (
	sessionControllers "github.com/afnankhn654-alt/ShopNest/controllers/session"
	"github.com/afnankhn654-alt/ShopNest/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all “/auth/*” and “/session/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	h := sessionControllers.NewHandlers(d.Sessions, d.Issuer, d.Store, d.Logger)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", h.CreateGuest())

		// Every other auth call upgrades or downgrades an existing session
		signed := authGroup.Group("")
		signed.Use(middleware.ValidateToken(d.Issuer, d.Sessions))
		{
			signed.POST("/provider", h.ProviderLogin())
			signed.POST("/login", h.Login())
			signed.POST("/register", h.Register())
			signed.POST("/logout", h.Logout())
			signed.GET("/me", h.Me())
		}
	}

	sessionGroup := r.Group("/session")
	sessionGroup.Use(middleware.ValidateToken(d.Issuer, d.Sessions))
	{
		sessionGroup.GET("", h.GetSession())
		sessionGroup.POST("/navigate", h.Navigate())
	}
}
