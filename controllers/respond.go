// Package controllers holds helpers shared by the HTTP handler packages.
package controllers

import (
	"errors"
	"net/http"

	"github.com/afnankhn654-alt/ShopNest/chatbot"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
)

// Status maps a domain error to its HTTP status.
func Status(err error) int {
	switch {
	case store.IsValidation(err),
		errors.Is(err, store.ErrInvalidRating),
		errors.Is(err, chatbot.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrProductNotFound),
		errors.Is(err, store.ErrCategoryNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrOrderLineNotFound),
		errors.Is(err, store.ErrLineNotFound),
		errors.Is(err, store.ErrAddressNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrAlreadyReviewed),
		errors.Is(err, store.ErrOrderNotDelivered),
		errors.Is(err, store.ErrInsufficientStock),
		errors.Is(err, chatbot.ErrReplyPending):
		return http.StatusConflict
	case errors.Is(err, store.ErrSessionNotFound):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as {"error": message}. Internal errors get fallback
// instead of their text.
func Error(c *gin.Context, err error, fallback string) {
	status := Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = fallback
	}
	c.JSON(status, gin.H{"error": msg})
}
