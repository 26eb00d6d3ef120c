package productcontroller

import (
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/afnankhn654-alt/ShopNest/catalog"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
)

const trendingCount = 4

// GET /banners
func GetBanners(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, shop.Banners())
	}
}

// GET /flash-sale
func GetFlashSale(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, shop.FlashSale())
	}
}

// GetTrending returns a random handful of products on every call.
// GET /products/trending
func GetTrending(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		seed := uint64(time.Now().UnixNano())
		r := rand.New(rand.NewPCG(seed, seed>>7))
		c.JSON(http.StatusOK, catalog.Trending(r, shop.Products(), trendingCount))
	}
}
