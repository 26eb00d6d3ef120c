package store

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderLineNotFound = errors.New("order has no line for this product")
	ErrAlreadyReviewed   = errors.New("this order item has already been reviewed")
	ErrOrderNotDelivered = errors.New("only delivered orders can be reviewed")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrLineNotFound      = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("not enough stock for the requested quantity")
	ErrAddressNotFound   = errors.New("address not found")
	ErrSessionNotFound   = errors.New("session not found or expired")
)

// ValidationError is a user-facing message about bad input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
