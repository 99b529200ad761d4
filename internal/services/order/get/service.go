package get

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type orderGetter interface {
	Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error)
	OrdersByUser(ctx context.Context, userUUID uuid.UUID) ([]models.Order, error)
	OrdersByProducer(ctx context.Context, producerUUID uuid.UUID) ([]models.Order, error)
}

type orderCache interface {
	Get(key uuid.UUID) (value *models.Order, ok bool)
	Add(key uuid.UUID, value *models.Order) (evicted bool)
}

type Service struct {
	log   logger.Logger
	cache orderCache

	orders orderGetter
}

func New(log logger.Logger, cache orderCache, orders orderGetter) *Service {
	return &Service{
		log:    log,
		cache:  cache,
		orders: orders,
	}
}

func (s *Service) Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error) {
	const op = "services.order.get.Order"

	if order, ok := s.cache.Get(orderUUID); ok && order != nil {
		s.log.DebugContext(ctx, op, logger.String("cache", "hit"))
		return order, nil
	}

	order, err := s.orders.Order(ctx, orderUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_ = s.cache.Add(orderUUID, order)

	return order, nil
}

// Orders is role-scoped: clients see their own orders, producers see
// orders containing at least one of their products, admins see their own
// view of nothing special and should query per role explicitly.
func (s *Service) Orders(ctx context.Context, principal models.Principal) ([]models.Order, error) {
	const op = "services.order.get.Orders"

	var (
		orders []models.Order
		err    error
	)

	switch principal.Role {
	case models.RoleProducteur:
		orders, err = s.orders.OrdersByProducer(ctx, principal.UUID)
	default:
		orders, err = s.orders.OrdersByUser(ctx, principal.UUID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range orders {
		order := orders[i]
		_ = s.cache.Add(order.OrderUUID, &order)
	}

	s.log.InfoContext(ctx, op,
		logger.String("role", string(principal.Role)),
		logger.Int("orders", len(orders)),
	)

	return orders, nil
}
