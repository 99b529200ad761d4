// Package cart implements the pre-checkout basket. Stock checks here are
// advisory: quantities are validated against what is available right now,
// but the authoritative reservation happens at checkout.
package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
	internalErrors "github.com/marcheferme/marketplace_service/internal/lib/errors"
	"github.com/marcheferme/marketplace_service/internal/policy"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type productGetter interface {
	Product(ctx context.Context, productUUID uuid.UUID) (*models.Product, error)
}

type cartRepository interface {
	Cart(ctx context.Context, userUUID uuid.UUID) (*models.Cart, error)
	Upsert(ctx context.Context, item models.CartItem) error
	UpdateQuantity(ctx context.Context, userUUID, productUUID uuid.UUID, quantity int, unitPrice decimal.Decimal) error
	Remove(ctx context.Context, userUUID, productUUID uuid.UUID) error
	Clear(ctx context.Context, userUUID uuid.UUID) error
}

type Service struct {
	log logger.Logger

	products productGetter
	carts    cartRepository
}

func New(log logger.Logger, products productGetter, carts cartRepository) *Service {
	return &Service{
		log:      log,
		products: products,
		carts:    carts,
	}
}

func (s *Service) Cart(ctx context.Context, userUUID uuid.UUID) (*models.Cart, error) {
	const op = "services.cart.Cart"

	cart, err := s.carts.Cart(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cart, nil
}

// AddItem merges with any existing line for the product, validating the
// merged quantity against current stock and snapshotting the current
// price.
func (s *Service) AddItem(ctx context.Context, principal models.Principal, userUUID, productUUID uuid.UUID, quantity int) (*models.Cart, error) {
	const op = "services.cart.AddItem"

	if !policy.CanPerform(principal, policy.ActionMutateCart, userUUID) {
		return nil, internalErrors.ErrForbidden
	}

	product, err := s.products.Product(ctx, productUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cart, err := s.carts.Cart(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	requested := quantity
	if existing, ok := cart.Item(productUUID); ok {
		requested += existing.Quantity
	}

	if requested > product.Available {
		return nil, &internalErrors.InsufficientStockError{
			ProductUUID: productUUID,
			Requested:   requested,
			Available:   product.Available,
		}
	}

	item := models.CartItem{
		UserUUID:    userUUID,
		ProductUUID: productUUID,
		Quantity:    quantity,
		UnitPrice:   product.Price,
	}

	if err = s.carts.Upsert(ctx, item); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, op,
		logger.String("user_uuid", userUUID.String()),
		logger.String("product_uuid", productUUID.String()),
		logger.Int("quantity", quantity),
	)

	return s.carts.Cart(ctx, userUUID)
}

func (s *Service) UpdateQuantity(ctx context.Context, principal models.Principal, userUUID, productUUID uuid.UUID, quantity int) (*models.Cart, error) {
	const op = "services.cart.UpdateQuantity"

	if !policy.CanPerform(principal, policy.ActionMutateCart, userUUID) {
		return nil, internalErrors.ErrForbidden
	}

	product, err := s.products.Product(ctx, productUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if quantity > product.Available {
		return nil, &internalErrors.InsufficientStockError{
			ProductUUID: productUUID,
			Requested:   quantity,
			Available:   product.Available,
		}
	}

	if err = s.carts.UpdateQuantity(ctx, userUUID, productUUID, quantity, product.Price); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.carts.Cart(ctx, userUUID)
}

func (s *Service) RemoveItem(ctx context.Context, principal models.Principal, userUUID, productUUID uuid.UUID) (*models.Cart, error) {
	const op = "services.cart.RemoveItem"

	if !policy.CanPerform(principal, policy.ActionMutateCart, userUUID) {
		return nil, internalErrors.ErrForbidden
	}

	if err := s.carts.Remove(ctx, userUUID, productUUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.carts.Cart(ctx, userUUID)
}

func (s *Service) Clear(ctx context.Context, principal models.Principal, userUUID uuid.UUID) error {
	const op = "services.cart.Clear"

	if !policy.CanPerform(principal, policy.ActionMutateCart, userUUID) {
		return internalErrors.ErrForbidden
	}

	if err := s.carts.Clear(ctx, userUUID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
