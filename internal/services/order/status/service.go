// Package status drives per-line transitions. Lines are owned for status
// purposes by the producer of the referenced product, not by the order's
// client.
package status

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
	internalErrors "github.com/marcheferme/marketplace_service/internal/lib/errors"
	"github.com/marcheferme/marketplace_service/internal/metrics"
	"github.com/marcheferme/marketplace_service/internal/policy"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type orderGetter interface {
	Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error)
}

type lineStatusUpdater interface {
	UpdateLineStatus(ctx context.Context, orderUUID, productUUID uuid.UUID, newStatus models.LineStatus, expectedVersion int) error
}

type orderCache interface {
	Remove(key uuid.UUID) (present bool)
}

type Service struct {
	log     logger.Logger
	cache   orderCache
	metrics *metrics.Metrics

	orders  orderGetter
	updater lineStatusUpdater
}

func New(log logger.Logger, cache orderCache, m *metrics.Metrics, orders orderGetter, updater lineStatusUpdater) *Service {
	return &Service{
		log:     log,
		cache:   cache,
		metrics: m,
		orders:  orders,
		updater: updater,
	}
}

// UpdateLineStatus applies one forward transition to a single line. The
// optimistic version check in the repository turns a lost race into
// ErrConflict; callers retry, the service never does.
func (s *Service) UpdateLineStatus(ctx context.Context, principal models.Principal, orderUUID, productUUID uuid.UUID, newStatus models.LineStatus) error {
	const op = "services.order.status.UpdateLineStatus"

	order, err := s.orders.Order(ctx, orderUUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	line, ok := order.Line(productUUID)
	if !ok {
		return internalErrors.ErrProductNotFound
	}

	if !policy.CanPerform(principal, policy.ActionUpdateLineStatus, line.ProducerUUID) {
		return internalErrors.ErrForbidden
	}

	if !models.CanTransition(line.Status, newStatus) {
		s.metrics.TransitionsDenied.Inc()
		return fmt.Errorf("%w: %s -> %s", internalErrors.ErrInvalidTransition, line.Status, newStatus)
	}

	if err = s.updater.UpdateLineStatus(ctx, orderUUID, productUUID, newStatus, line.Version); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.LineTransitions.WithLabelValues(string(newStatus)).Inc()
	_ = s.cache.Remove(orderUUID)

	s.log.InfoContext(ctx, op,
		logger.String("order_uuid", orderUUID.String()),
		logger.String("product_uuid", productUUID.String()),
		logger.String("status", string(newStatus)),
	)

	return nil
}
