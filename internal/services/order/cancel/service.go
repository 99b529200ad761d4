// Package cancel implements client-initiated order cancellation with
// compensating stock release.
package cancel

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

type lineCanceller interface {
	CancelLines(ctx context.Context, orderUUID uuid.UUID, lines []models.OrderLine) error
}

type orderCache interface {
	Remove(key uuid.UUID) (present bool)
}

type Service struct {
	log     logger.Logger
	cache   orderCache
	metrics *metrics.Metrics

	orders    orderGetter
	canceller lineCanceller
}

func New(log logger.Logger, cache orderCache, m *metrics.Metrics, orders orderGetter, canceller lineCanceller) *Service {
	return &Service{
		log:       log,
		cache:     cache,
		metrics:   m,
		orders:    orders,
		canceller: canceller,
	}
}

// Cancel moves every non-delivered line to annulee and releases its
// reserved stock, once per line, in a single transaction. A delivered line
// anywhere in the order blocks cancellation; a fully cancelled order
// cannot be cancelled again.
func (s *Service) Cancel(ctx context.Context, principal models.Principal, orderUUID uuid.UUID) error {
	const op = "services.order.cancel.Cancel"

	order, err := s.orders.Order(ctx, orderUUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !policy.CanPerform(principal, policy.ActionCancelOrder, order.UserUUID) {
		return internalErrors.ErrForbidden
	}

	toCancel := make([]models.OrderLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		switch line.Status {
		case models.LineStatusLivre:
			return fmt.Errorf("%w: line %s already delivered", internalErrors.ErrInvalidTransition, line.ProductUUID)
		case models.LineStatusAnnulee:
			continue
		default:
			toCancel = append(toCancel, line)
		}
	}

	if len(toCancel) == 0 {
		return fmt.Errorf("%w: order already cancelled", internalErrors.ErrInvalidTransition)
	}

	if err = s.canceller.CancelLines(ctx, orderUUID, toCancel); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.OrdersCancelled.Inc()
	_ = s.cache.Remove(orderUUID)

	s.log.InfoContext(ctx, op,
		logger.String("order_uuid", orderUUID.String()),
		logger.Int("cancelled_lines", len(toCancel)),
	)

	return nil
}
