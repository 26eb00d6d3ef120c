package orderControllers

import (
	"net/http"
	"strings"

	"github.com/afnankhn654-alt/ShopNest/controllers"
	"github.com/afnankhn654-alt/ShopNest/middleware"
	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
)

// -------- Request Structs --------
type ReviewRequest struct {
	ProductID string   `json:"product_id" binding:"required"`
	Rating    int      `json:"rating" binding:"required"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
}

// -------- Helpers --------

// Map a query value to an OrderStatus, case-insensitively.
func mapOrderStatus(status string) (models.OrderStatus, bool) {
	for _, s := range []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		if strings.EqualFold(status, string(s)) {
			return s, true
		}
	}
	return "", false
}

// -------- Handlers --------

// GET /orders?status=
func GetOrdersHandler(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := shop.Orders("")

		if raw := c.Query("status"); raw != "" {
			status, ok := mapOrderStatus(raw)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
				return
			}
			filtered := orders[:0]
			for _, o := range orders {
				if o.Status == status {
					filtered = append(filtered, o)
				}
			}
			orders = filtered
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// GET /orders/:order_id
func GetOrderByIDHandler(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := shop.Order(c.Param("order_id"))
		if err != nil {
			controllers.Error(c, err, "Failed to fetch order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /orders/:order_id/reviews
func SubmitReviewHandler(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
			return
		}

		var req ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		author := user.DisplayName
		if author == "" {
			author = user.Email
		}
		review, err := shop.SubmitReview(c.Request.Context(), req.ProductID, c.Param("order_id"), models.ReviewInput{
			UserID:  user.UID,
			Author:  author,
			Avatar:  user.AvatarURL,
			Rating:  req.Rating,
			Title:   req.Title,
			Content: req.Content,
			Images:  req.Images,
		})
		if err != nil {
			controllers.Error(c, err, "Failed to submit review")
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}
