// Package adjust applies producer and admin stock corrections. The delta
// is unconstrained in sign, but a correction that would take the
// available quantity below zero fails instead of clamping.
package adjust

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

type productGetter interface {
	Product(ctx context.Context, productUUID uuid.UUID) (*models.Product, error)
}

type stockAdjuster interface {
	Adjust(ctx context.Context, productUUID uuid.UUID, delta int) error
}

type Service struct {
	log     logger.Logger
	metrics *metrics.Metrics

	products productGetter
	ledger   stockAdjuster
}

func New(log logger.Logger, m *metrics.Metrics, products productGetter, ledger stockAdjuster) *Service {
	return &Service{
		log:      log,
		metrics:  m,
		products: products,
		ledger:   ledger,
	}
}

func (s *Service) AdjustStock(ctx context.Context, principal models.Principal, productUUID uuid.UUID, delta int) error {
	const op = "services.product.adjust.AdjustStock"

	product, err := s.products.Product(ctx, productUUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !policy.CanPerform(principal, policy.ActionAdjustStock, product.ProducerUUID) {
		return internalErrors.ErrForbidden
	}

	if err = s.ledger.Adjust(ctx, productUUID, delta); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.StockAdjustments.Inc()

	s.log.InfoContext(ctx, op,
		logger.String("product_uuid", productUUID.String()),
		logger.Int("delta", delta),
	)

	return nil
}
