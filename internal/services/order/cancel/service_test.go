package cancel

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
	internalErrors "github.com/marcheferme/marketplace_service/internal/lib/errors"
	"github.com/marcheferme/marketplace_service/internal/metrics"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type fakeOrderGetter struct {
	order *models.Order
	err   error
}

func (f *fakeOrderGetter) Order(_ context.Context, _ uuid.UUID) (*models.Order, error) {
	return f.order, f.err
}

type fakeCanceller struct {
	err       error
	cancelled []models.OrderLine
}

func (f *fakeCanceller) CancelLines(_ context.Context, _ uuid.UUID, lines []models.OrderLine) error {
	if f.err != nil {
		return f.err
	}
	f.cancelled = append(f.cancelled, lines...)
	return nil
}

type fakeCache struct {
	removed []uuid.UUID
}

func (f *fakeCache) Remove(key uuid.UUID) bool {
	f.removed = append(f.removed, key)
	return true
}

func newTestService(orders *fakeOrderGetter, canceller *fakeCanceller) *Service {
	log := logger.NewSlogLogger(logger.EnvLocal)
	return New(log, &fakeCache{}, metrics.New(prometheus.NewRegistry()), orders, canceller)
}

func orderWithLines(userUUID uuid.UUID, statuses ...models.LineStatus) *models.Order {
	order := &models.Order{OrderUUID: uuid.New(), UserUUID: userUUID}
	for i, status := range statuses {
		order.Lines = append(order.Lines, models.OrderLine{
			ProductUUID: uuid.New(),
			Quantity:    i + 1,
			Status:      status,
			Version:     1,
		})
	}
	return order
}

func TestCancelReleasesNonDeliveredLines(t *testing.T) {
	userUUID := uuid.New()
	order := orderWithLines(userUUID, models.LineStatusEnCours, models.LineStatusPret, models.LineStatusAnnulee)

	canceller := &fakeCanceller{}
	svc := newTestService(&fakeOrderGetter{order: order}, canceller)

	err := svc.Cancel(context.Background(), models.Principal{UUID: userUUID, Role: models.RoleClient}, order.OrderUUID)
	require.NoError(t, err)

	// en_cours and pret lines are cancelled, the already annulee one is
	// skipped so its stock is not released twice
	require.Len(t, canceller.cancelled, 2)
	require.Equal(t, order.Lines[0].ProductUUID, canceller.cancelled[0].ProductUUID)
	require.Equal(t, order.Lines[1].ProductUUID, canceller.cancelled[1].ProductUUID)
}

func TestCancelBlockedByDeliveredLine(t *testing.T) {
	userUUID := uuid.New()
	order := orderWithLines(userUUID, models.LineStatusLivre, models.LineStatusEnCours)

	canceller := &fakeCanceller{}
	svc := newTestService(&fakeOrderGetter{order: order}, canceller)

	err := svc.Cancel(context.Background(), models.Principal{UUID: userUUID, Role: models.RoleClient}, order.OrderUUID)
	require.ErrorIs(t, err, internalErrors.ErrInvalidTransition)
	require.Empty(t, canceller.cancelled)
}

func TestCancelDoubleCancelRejected(t *testing.T) {
	userUUID := uuid.New()
	order := orderWithLines(userUUID, models.LineStatusAnnulee, models.LineStatusAnnulee)

	canceller := &fakeCanceller{}
	svc := newTestService(&fakeOrderGetter{order: order}, canceller)

	err := svc.Cancel(context.Background(), models.Principal{UUID: userUUID, Role: models.RoleClient}, order.OrderUUID)
	require.ErrorIs(t, err, internalErrors.ErrInvalidTransition)
	require.Empty(t, canceller.cancelled)
}

func TestCancelForbiddenForOtherClient(t *testing.T) {
	order := orderWithLines(uuid.New(), models.LineStatusEnCours)

	canceller := &fakeCanceller{}
	svc := newTestService(&fakeOrderGetter{order: order}, canceller)

	err := svc.Cancel(context.Background(), models.Principal{UUID: uuid.New(), Role: models.RoleClient}, order.OrderUUID)
	require.ErrorIs(t, err, internalErrors.ErrForbidden)
	require.Empty(t, canceller.cancelled)
}

func TestCancelAdminAllowed(t *testing.T) {
	order := orderWithLines(uuid.New(), models.LineStatusEnCours)

	canceller := &fakeCanceller{}
	svc := newTestService(&fakeOrderGetter{order: order}, canceller)

	err := svc.Cancel(context.Background(), models.Principal{UUID: uuid.New(), Role: models.RoleAdmin}, order.OrderUUID)
	require.NoError(t, err)
	require.Len(t, canceller.cancelled, 1)
}

func TestCancelConflictPropagates(t *testing.T) {
	userUUID := uuid.New()
	order := orderWithLines(userUUID, models.LineStatusEnCours)

	canceller := &fakeCanceller{err: internalErrors.ErrConflict}
	svc := newTestService(&fakeOrderGetter{order: order}, canceller)

	err := svc.Cancel(context.Background(), models.Principal{UUID: userUUID, Role: models.RoleClient}, order.OrderUUID)
	require.ErrorIs(t, err, internalErrors.ErrConflict)
}
