package routes

import (
	productcontroller "github.com/afnankhn654-alt/ShopNest/controllers/product"
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes registers the public browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, d Deps) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(d.Store))                                            // GET /products
		products.GET("/trending", productcontroller.GetTrending(d.Store))                                   // GET /products/trending
		products.GET("/:id", productcontroller.GetProductByID(d.Store))                                     // GET /products/:id
		products.GET("/:id/similar", productcontroller.GetSimilarProducts(d.Store))                         // GET /products/:id/similar
		products.GET("/:id/description", productcontroller.DescribeProduct(d.Store, d.Assistant, d.Logger)) // GET /products/:id/description
	}

	r.GET("/categories", productcontroller.GetCategories(d.Store))                    // GET /categories
	r.GET("/categories/:id/products", productcontroller.GetCategoryProducts(d.Store)) // GET /categories/:id/products
	r.GET("/banners", productcontroller.GetBanners(d.Store))                          // GET /banners
	r.GET("/flash-sale", productcontroller.GetFlashSale(d.Store))                     // GET /flash-sale
}
