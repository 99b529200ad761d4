package status

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

type fakeUpdater struct {
	err   error
	calls []models.LineStatus
}

func (f *fakeUpdater) UpdateLineStatus(_ context.Context, _, _ uuid.UUID, newStatus models.LineStatus, _ int) error {
	f.calls = append(f.calls, newStatus)
	return f.err
}

type fakeCache struct {
	removed []uuid.UUID
}

func (f *fakeCache) Remove(key uuid.UUID) bool {
	f.removed = append(f.removed, key)
	return true
}

func testOrder(producerUUID uuid.UUID, productUUID uuid.UUID, lineStatus models.LineStatus) *models.Order {
	return &models.Order{
		OrderUUID: uuid.New(),
		UserUUID:  uuid.New(),
		Lines: []models.OrderLine{
			{ProductUUID: productUUID, ProducerUUID: producerUUID, Quantity: 2, Status: lineStatus, Version: 3},
		},
	}
}

func newTestService(orders *fakeOrderGetter, updater *fakeUpdater, cache *fakeCache) *Service {
	log := logger.NewSlogLogger(logger.EnvLocal)
	return New(log, cache, metrics.New(prometheus.NewRegistry()), orders, updater)
}

func TestUpdateLineStatus(t *testing.T) {
	producerUUID := uuid.New()
	productUUID := uuid.New()

	tCases := []struct {
		name      string
		principal models.Principal
		from      models.LineStatus
		to        models.LineStatus
		expErr    error
	}{
		{
			name:      "en_cours_to_pret",
			principal: models.Principal{UUID: producerUUID, Role: models.RoleProducteur},
			from:      models.LineStatusEnCours,
			to:        models.LineStatusPret,
		},
		{
			name:      "pret_to_livre",
			principal: models.Principal{UUID: producerUUID, Role: models.RoleProducteur},
			from:      models.LineStatusPret,
			to:        models.LineStatusLivre,
		},
		{
			name:      "en_cours_to_annulee",
			principal: models.Principal{UUID: producerUUID, Role: models.RoleProducteur},
			from:      models.LineStatusEnCours,
			to:        models.LineStatusAnnulee,
		},
		{
			name:      "skipping_pret_rejected",
			principal: models.Principal{UUID: producerUUID, Role: models.RoleProducteur},
			from:      models.LineStatusEnCours,
			to:        models.LineStatusLivre,
			expErr:    internalErrors.ErrInvalidTransition,
		},
		{
			name:      "livre_is_terminal",
			principal: models.Principal{UUID: producerUUID, Role: models.RoleProducteur},
			from:      models.LineStatusLivre,
			to:        models.LineStatusPret,
			expErr:    internalErrors.ErrInvalidTransition,
		},
		{
			name:      "livre_cannot_be_cancelled",
			principal: models.Principal{UUID: producerUUID, Role: models.RoleProducteur},
			from:      models.LineStatusLivre,
			to:        models.LineStatusAnnulee,
			expErr:    internalErrors.ErrInvalidTransition,
		},
		{
			name:      "foreign_producer_forbidden",
			principal: models.Principal{UUID: uuid.New(), Role: models.RoleProducteur},
			from:      models.LineStatusEnCours,
			to:        models.LineStatusPret,
			expErr:    internalErrors.ErrForbidden,
		},
		{
			name:      "client_forbidden",
			principal: models.Principal{UUID: producerUUID, Role: models.RoleClient},
			from:      models.LineStatusEnCours,
			to:        models.LineStatusPret,
			expErr:    internalErrors.ErrForbidden,
		},
		{
			name:      "admin_allowed",
			principal: models.Principal{UUID: uuid.New(), Role: models.RoleAdmin},
			from:      models.LineStatusEnCours,
			to:        models.LineStatusPret,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			orders := &fakeOrderGetter{order: testOrder(producerUUID, productUUID, tCase.from)}
			updater := &fakeUpdater{}
			cache := &fakeCache{}

			svc := newTestService(orders, updater, cache)

			err := svc.UpdateLineStatus(context.Background(), tCase.principal, orders.order.OrderUUID, productUUID, tCase.to)

			if tCase.expErr != nil {
				require.ErrorIs(t, err, tCase.expErr)
				require.Empty(t, updater.calls)
				require.Empty(t, cache.removed)
				return
			}

			require.NoError(t, err)
			require.Equal(t, []models.LineStatus{tCase.to}, updater.calls)
			require.Equal(t, []uuid.UUID{orders.order.OrderUUID}, cache.removed)
		})
	}
}

func TestUpdateLineStatusUnknownProduct(t *testing.T) {
	producerUUID := uuid.New()
	orders := &fakeOrderGetter{order: testOrder(producerUUID, uuid.New(), models.LineStatusEnCours)}

	svc := newTestService(orders, &fakeUpdater{}, &fakeCache{})

	err := svc.UpdateLineStatus(
		context.Background(),
		models.Principal{UUID: producerUUID, Role: models.RoleProducteur},
		orders.order.OrderUUID,
		uuid.New(),
		models.LineStatusPret,
	)
	require.ErrorIs(t, err, internalErrors.ErrProductNotFound)
}

func TestUpdateLineStatusConflict(t *testing.T) {
	producerUUID := uuid.New()
	productUUID := uuid.New()
	orders := &fakeOrderGetter{order: testOrder(producerUUID, productUUID, models.LineStatusEnCours)}
	updater := &fakeUpdater{err: internalErrors.ErrConflict}

	svc := newTestService(orders, updater, &fakeCache{})

	err := svc.UpdateLineStatus(
		context.Background(),
		models.Principal{UUID: producerUUID, Role: models.RoleProducteur},
		orders.order.OrderUUID,
		productUUID,
		models.LineStatusPret,
	)
	require.ErrorIs(t, err, internalErrors.ErrConflict)
}
