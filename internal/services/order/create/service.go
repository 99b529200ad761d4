// Package create turns a validated cart into an immutable order. The
// repository runs reservation and persistence in one transaction; this
// service owns ordering, the empty-cart check and the cache/metrics side
// effects.
package create

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
	internalErrors "github.com/marcheferme/marketplace_service/internal/lib/errors"
	"github.com/marcheferme/marketplace_service/internal/metrics"
	"github.com/marcheferme/marketplace_service/internal/policy"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type cartGetter interface {
	Cart(ctx context.Context, userUUID uuid.UUID) (*models.Cart, error)
}

type orderCreator interface {
	Create(ctx context.Context, userUUID uuid.UUID, items []models.CartItem) (*models.Order, error)
}

type orderCache interface {
	Add(key uuid.UUID, value *models.Order) (evicted bool)
}

type Service struct {
	log     logger.Logger
	cache   orderCache
	metrics *metrics.Metrics

	carts  cartGetter
	orders orderCreator
}

func New(log logger.Logger, cache orderCache, m *metrics.Metrics, carts cartGetter, orders orderCreator) *Service {
	return &Service{
		log:     log,
		cache:   cache,
		metrics: m,
		carts:   carts,
		orders:  orders,
	}
}

// Create checks out the user's cart. Items are reserved in ascending
// product uuid order so concurrent checkouts touch product rows in a
// consistent order. Either every line is reserved and the order committed,
// or nothing changes and the cart survives intact.
func (s *Service) Create(ctx context.Context, principal models.Principal, userUUID uuid.UUID) (*models.Order, error) {
	const op = "services.order.create.Create"

	if !policy.CanPerform(principal, policy.ActionCheckout, userUUID) {
		return nil, internalErrors.ErrForbidden
	}

	userCart, err := s.carts.Cart(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(userCart.Items) == 0 {
		return nil, internalErrors.ErrEmptyCart
	}

	items := make([]models.CartItem, len(userCart.Items))
	copy(items, userCart.Items)
	sort.Slice(items, func(i, j int) bool {
		return strings.Compare(items[i].ProductUUID.String(), items[j].ProductUUID.String()) < 0
	})

	order, err := s.orders.Create(ctx, userUUID, items)
	if err != nil {
		if errors.Is(err, internalErrors.ErrInsufficientStock) {
			s.metrics.StockConflicts.Inc()
			s.log.WarnContext(ctx, op, logger.Err(err))
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.OrdersCreated.Inc()
	_ = s.cache.Add(order.OrderUUID, order)

	s.log.InfoContext(ctx, op,
		logger.String("order_uuid", order.OrderUUID.String()),
		logger.String("user_uuid", userUUID.String()),
		logger.Int("lines", len(order.Lines)),
	)

	return order, nil
}
