package errors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrCartLineNotFound  = errors.New("product is not in the cart")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrForbidden         = errors.New("operation not permitted for this user")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrConflict          = errors.New("concurrent modification, retry the operation")
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidAdjustment is returned when a stock correction would take
	// the available quantity below zero. Adjust fails instead of clamping.
	ErrInvalidAdjustment = errors.New("stock adjustment would go below zero")
)

// InsufficientStockError carries the quantities needed for a precise
// user-facing message. Matches ErrInsufficientStock via errors.Is.
type InsufficientStockError struct {
	ProductUUID uuid.UUID
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductUUID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Code maps a business error to its stable machine-checkable code. The
// empty string means the error is not part of the taxonomy and must be
// treated as an infrastructure failure.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return "PRODUCT_NOT_FOUND"
	case errors.Is(err, ErrOrderNotFound):
		return "ORDER_NOT_FOUND"
	case errors.Is(err, ErrCartLineNotFound):
		return "CART_LINE_NOT_FOUND"
	case errors.Is(err, ErrEmptyCart):
		return "EMPTY_CART"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, ErrInvalidAdjustment):
		return "INVALID_ADJUSTMENT"
	}
	return ""
}
