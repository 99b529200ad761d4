package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestInsufficientStockError(t *testing.T) {
	productUUID := uuid.New()
	err := &InsufficientStockError{ProductUUID: productUUID, Requested: 3, Available: 1}

	require.ErrorIs(t, err, ErrInsufficientStock)
	require.Contains(t, err.Error(), "requested 3")
	require.Contains(t, err.Error(), "available 1")
	require.Contains(t, err.Error(), productUUID.String())

	wrapped := fmt.Errorf("checkout: %w", err)
	require.ErrorIs(t, wrapped, ErrInsufficientStock)
	require.Equal(t, "INSUFFICIENT_STOCK", Code(wrapped))
}

func TestCode(t *testing.T) {
	require.Equal(t, "EMPTY_CART", Code(ErrEmptyCart))
	require.Equal(t, "FORBIDDEN", Code(fmt.Errorf("op: %w", ErrForbidden)))
	require.Equal(t, "INVALID_TRANSITION", Code(ErrInvalidTransition))
	require.Equal(t, "", Code(errors.New("driver: bad connection")))
}
