package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/afnankhn654-alt/ShopNest/chatbot"
	"github.com/afnankhn654-alt/ShopNest/controllers"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const similarCount = 5

// GetProductByID returns a single product with its variants, reviews and FAQs.
// URL param: /products/:id
func GetProductByID(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := shop.Product(c.Param("id"))
		if err != nil {
			controllers.Error(c, err, "Failed to retrieve product")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"product":      product,
			"variantTypes": product.VariantTypes(),
		})
	}
}

// GetSimilarProducts lists other products of the same category.
// GET /products/:id/similar?limit=5
func GetSimilarProducts(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(similarCount)))
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		similar, err := shop.Similar(c.Param("id"), n)
		if err != nil {
			controllers.Error(c, err, "Failed to fetch similar products")
			return
		}
		c.JSON(http.StatusOK, similar)
	}
}

// DescribeProduct asks the assistant for marketing copy.
// GET /products/:id/description
func DescribeProduct(shop *store.Store, assistant *chatbot.Assistant, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := shop.Product(c.Param("id"))
		if err != nil {
			controllers.Error(c, err, "Failed to retrieve product")
			return
		}
		desc, err := assistant.DescribeProduct(c.Request.Context(), product.Name)
		if err != nil {
			logger.Warn("product description failed", zap.String("product_id", product.ID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate description"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"productId": product.ID, "description": desc})
	}
}
