package userControllers

import (
	"net/http"

	"github.com/afnankhn654-alt/ShopNest/auth"
	"github.com/afnankhn654-alt/ShopNest/controllers"
	"github.com/afnankhn654-alt/ShopNest/middleware"
	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
)

// Profile is the profile page payload.
type Profile struct {
	User      auth.Identity    `json:"user"`
	Orders    []models.Order   `json:"orders"`
	Addresses []models.Address `json:"addresses"`
}

// GET /user/
func GetUser(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(http.StatusOK, Profile{
			User:      user,
			Orders:    shop.Orders(""),
			Addresses: shop.Addresses(user.UID),
		})
	}
}

// GET /user/addresses
func GetAddresses(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"addresses": shop.Addresses(user.UID)})
	}
}

// POST /user/addresses
func AddAddress(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input models.Address
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		addr, err := shop.AddAddress(c.Request.Context(), user.UID, input)
		if err != nil {
			controllers.Error(c, err, "Failed to save address")
			return
		}
		c.JSON(http.StatusCreated, addr)
	}
}

// PUT /user/addresses/:id
func UpdateAddress(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var input models.Address
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		addr, err := shop.UpdateAddress(c.Request.Context(), user.UID, c.Param("id"), input)
		if err != nil {
			controllers.Error(c, err, "Failed to update address")
			return
		}
		c.JSON(http.StatusOK, addr)
	}
}

// DELETE /user/addresses/:id
func DeleteAddress(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		if err := shop.DeleteAddress(c.Request.Context(), user.UID, c.Param("id")); err != nil {
			controllers.Error(c, err, "Failed to delete address")
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": shop.Addresses(user.UID)})
	}
}

// POST /user/addresses/:id/default
func SetDefaultAddress(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		if err := shop.SetDefaultAddress(c.Request.Context(), user.UID, c.Param("id")); err != nil {
			controllers.Error(c, err, "Failed to update default address")
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": shop.Addresses(user.UID)})
	}
}
