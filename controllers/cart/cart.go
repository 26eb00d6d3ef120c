package cartControllers

import (
	"net/http"

	"github.com/afnankhn654-alt/ShopNest/controllers"
	"github.com/afnankhn654-alt/ShopNest/middleware"
	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
)

type CartItemInput struct {
	ProductID string                        `json:"product_id" binding:"required"`
	Quantity  int                           `json:"quantity" binding:"required,min=1"`
	Variants  map[models.VariantType]string `json:"variants"`
}

type QuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartResponse is the cart page payload.
type CartResponse struct {
	Items             []models.CartItem `json:"items"`
	ItemCount         int               `json:"itemCount"`
	Subtotal          string            `json:"subtotal"`
	FormattedSubtotal string            `json:"formattedSubtotal"`
}

func cartResponse(cart *store.Cart) CartResponse {
	subtotal := cart.Subtotal()
	items := cart.Items()
	if items == nil {
		items = []models.CartItem{}
	}
	return CartResponse{
		Items:             items,
		ItemCount:         cart.ItemCount(),
		Subtotal:          subtotal.StringFixed(2),
		FormattedSubtotal: models.FormatAmount(subtotal),
	}
}

// GET /cart
func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		c.JSON(http.StatusOK, cartResponse(session.Cart))
	}
}

// POST /cart
func AddCartItem(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// 1️⃣ Resolve the product
		product, err := shop.Product(input.ProductID)
		if err != nil {
			controllers.Error(c, err, "Failed to validate product")
			return
		}

		// 2️⃣ Every variant type needs an in-stock choice
		selected, err := store.ValidateSelection(product, input.Variants)
		if err != nil {
			controllers.Error(c, err, "Failed to validate variants")
			return
		}

		// 3️⃣ Merge into the session cart
		session := middleware.CurrentSession(c)
		item, err := session.Cart.AddItem(product, input.Quantity, selected)
		if err != nil {
			controllers.Error(c, err, "Failed to add item to cart")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"item": item,
			"cart": cartResponse(session.Cart),
		})
	}
}

// PUT /cart/:line_id
func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		session := middleware.CurrentSession(c)
		if err := session.Cart.UpdateQuantity(c.Param("line_id"), *input.Quantity); err != nil {
			controllers.Error(c, err, "Failed to update cart item")
			return
		}
		c.JSON(http.StatusOK, cartResponse(session.Cart))
	}
}

// DELETE /cart/:line_id
func DeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		session.Cart.RemoveItem(c.Param("line_id"))
		c.JSON(http.StatusOK, cartResponse(session.Cart))
	}
}

// DELETE /cart
func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		session.Cart.Clear()
		c.JSON(http.StatusOK, cartResponse(session.Cart))
	}
}
