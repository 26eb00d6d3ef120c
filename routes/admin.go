package routes

import (
	productcontroller "github.com/afnankhn654-alt/ShopNest/controllers/product"
	"github.com/afnankhn654-alt/ShopNest/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(d.APIKey))
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(d.Store))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.Store))
		}
	}
}
