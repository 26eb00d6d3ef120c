package productcontroller

import (
	"net/http"

	"github.com/afnankhn654-alt/ShopNest/catalog"
	"github.com/afnankhn654-alt/ShopNest/controllers"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
)

// GET /categories
func GetCategories(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, shop.Categories())
	}
}

// GetCategoryProducts lists a category page.
// GET /categories/:id/products?sort=price_asc|price_desc|rating_desc
func GetCategoryProducts(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := shop.Category(c.Param("id"))
		if err != nil {
			controllers.Error(c, err, "Failed to fetch category")
			return
		}
		sort := catalog.ParseSort(c.Query("sort"))
		products, err := shop.ProductsInCategory(category.ID, sort)
		if err != nil {
			controllers.Error(c, err, "Failed to fetch category products")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"category": category,
			"sort":     sort,
			"products": products,
		})
	}
}
