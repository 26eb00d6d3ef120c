package sessionControllers

import (
	"net/http"

	"github.com/afnankhn654-alt/ShopNest/middleware"
	"github.com/afnankhn654-alt/ShopNest/navigation"
	"github.com/gin-gonic/gin"
)

// GET /session
func (h *Handlers) GetSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		c.JSON(http.StatusOK, session.Summary(h.lookup))
	}
}

// POST /session/navigate
func (h *Handlers) Navigate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input navigation.Wire
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		view, err := navigation.Parse(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		session := middleware.CurrentSession(c)
		session.Navigate(view, h.lookup)
		c.JSON(http.StatusOK, session.Summary(h.lookup))
	}
}
