package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
	internalErrors "github.com/marcheferme/marketplace_service/internal/lib/errors"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type fakeProducts struct {
	products map[uuid.UUID]*models.Product
}

func (f *fakeProducts) Product(_ context.Context, productUUID uuid.UUID) (*models.Product, error) {
	product, ok := f.products[productUUID]
	if !ok {
		return nil, internalErrors.ErrProductNotFound
	}
	return product, nil
}

type fakeCarts struct {
	items map[uuid.UUID]map[uuid.UUID]models.CartItem
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{items: make(map[uuid.UUID]map[uuid.UUID]models.CartItem)}
}

func (f *fakeCarts) Cart(_ context.Context, userUUID uuid.UUID) (*models.Cart, error) {
	cart := &models.Cart{UserUUID: userUUID}
	for _, item := range f.items[userUUID] {
		cart.Items = append(cart.Items, item)
	}
	return cart, nil
}

func (f *fakeCarts) Upsert(_ context.Context, item models.CartItem) error {
	if f.items[item.UserUUID] == nil {
		f.items[item.UserUUID] = make(map[uuid.UUID]models.CartItem)
	}
	if existing, ok := f.items[item.UserUUID][item.ProductUUID]; ok {
		item.Quantity += existing.Quantity
	}
	f.items[item.UserUUID][item.ProductUUID] = item
	return nil
}

func (f *fakeCarts) UpdateQuantity(_ context.Context, userUUID, productUUID uuid.UUID, quantity int, unitPrice decimal.Decimal) error {
	item, ok := f.items[userUUID][productUUID]
	if !ok {
		return internalErrors.ErrCartLineNotFound
	}
	item.Quantity = quantity
	item.UnitPrice = unitPrice
	f.items[userUUID][productUUID] = item
	return nil
}

func (f *fakeCarts) Remove(_ context.Context, userUUID, productUUID uuid.UUID) error {
	if _, ok := f.items[userUUID][productUUID]; !ok {
		return internalErrors.ErrCartLineNotFound
	}
	delete(f.items[userUUID], productUUID)
	return nil
}

func (f *fakeCarts) Clear(_ context.Context, userUUID uuid.UUID) error {
	delete(f.items, userUUID)
	return nil
}

func newTestService(products *fakeProducts, carts *fakeCarts) *Service {
	return New(logger.NewSlogLogger(logger.EnvLocal), products, carts)
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	userUUID := uuid.New()
	productUUID := uuid.New()

	products := &fakeProducts{products: map[uuid.UUID]*models.Product{
		productUUID: {UUID: productUUID, Price: decimal.RequireFromString("3.20"), Available: 10},
	}}
	carts := newFakeCarts()
	svc := newTestService(products, carts)

	principal := models.Principal{UUID: userUUID, Role: models.RoleClient}

	cart, err := svc.AddItem(context.Background(), principal, userUUID, productUUID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 2, cart.Items[0].Quantity)
	require.True(t, cart.Items[0].UnitPrice.Equal(decimal.RequireFromString("3.20")))

	// a later price change does not rewrite the snapshot until re-added
	products.products[productUUID].Price = decimal.RequireFromString("4.00")
	cart, err = svc.Cart(context.Background(), userUUID)
	require.NoError(t, err)
	require.True(t, cart.Items[0].UnitPrice.Equal(decimal.RequireFromString("3.20")))
}

func TestAddItemMergesAndValidatesStock(t *testing.T) {
	userUUID := uuid.New()
	productUUID := uuid.New()

	products := &fakeProducts{products: map[uuid.UUID]*models.Product{
		productUUID: {UUID: productUUID, Price: decimal.NewFromInt(1), Available: 5},
	}}
	carts := newFakeCarts()
	svc := newTestService(products, carts)

	principal := models.Principal{UUID: userUUID, Role: models.RoleClient}

	_, err := svc.AddItem(context.Background(), principal, userUUID, productUUID, 3)
	require.NoError(t, err)

	// merged total would be 6 against 5 available
	_, err = svc.AddItem(context.Background(), principal, userUUID, productUUID, 3)
	require.ErrorIs(t, err, internalErrors.ErrInsufficientStock)

	var stockErr *internalErrors.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	require.Equal(t, 6, stockErr.Requested)
	require.Equal(t, 5, stockErr.Available)

	// merge within stock sums quantities
	cart, err := svc.AddItem(context.Background(), principal, userUUID, productUUID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	userUUID := uuid.New()
	svc := newTestService(&fakeProducts{products: map[uuid.UUID]*models.Product{}}, newFakeCarts())

	principal := models.Principal{UUID: userUUID, Role: models.RoleClient}

	_, err := svc.AddItem(context.Background(), principal, userUUID, uuid.New(), 1)
	require.ErrorIs(t, err, internalErrors.ErrProductNotFound)
}

func TestUpdateQuantityValidatesStock(t *testing.T) {
	userUUID := uuid.New()
	productUUID := uuid.New()

	products := &fakeProducts{products: map[uuid.UUID]*models.Product{
		productUUID: {UUID: productUUID, Price: decimal.NewFromInt(2), Available: 4},
	}}
	carts := newFakeCarts()
	svc := newTestService(products, carts)

	principal := models.Principal{UUID: userUUID, Role: models.RoleClient}

	_, err := svc.AddItem(context.Background(), principal, userUUID, productUUID, 1)
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(context.Background(), principal, userUUID, productUUID, 9)
	require.ErrorIs(t, err, internalErrors.ErrInsufficientStock)

	cart, err := svc.UpdateQuantity(context.Background(), principal, userUUID, productUUID, 4)
	require.NoError(t, err)
	require.Equal(t, 4, cart.Items[0].Quantity)
}

func TestRemoveMissingLine(t *testing.T) {
	userUUID := uuid.New()
	productUUID := uuid.New()

	products := &fakeProducts{products: map[uuid.UUID]*models.Product{
		productUUID: {UUID: productUUID, Price: decimal.NewFromInt(2), Available: 4},
	}}
	svc := newTestService(products, newFakeCarts())

	principal := models.Principal{UUID: userUUID, Role: models.RoleClient}

	_, err := svc.RemoveItem(context.Background(), principal, userUUID, productUUID)
	require.ErrorIs(t, err, internalErrors.ErrCartLineNotFound)
}

func TestCartMutationsForbidden(t *testing.T) {
	userUUID := uuid.New()
	productUUID := uuid.New()

	products := &fakeProducts{products: map[uuid.UUID]*models.Product{
		productUUID: {UUID: productUUID, Price: decimal.NewFromInt(2), Available: 4},
	}}
	svc := newTestService(products, newFakeCarts())

	// another client
	_, err := svc.AddItem(context.Background(), models.Principal{UUID: uuid.New(), Role: models.RoleClient}, userUUID, productUUID, 1)
	require.ErrorIs(t, err, internalErrors.ErrForbidden)

	// a producer, even the right uuid
	_, err = svc.AddItem(context.Background(), models.Principal{UUID: userUUID, Role: models.RoleProducteur}, userUUID, productUUID, 1)
	require.ErrorIs(t, err, internalErrors.ErrForbidden)

	// admin is allowed
	_, err = svc.AddItem(context.Background(), models.Principal{UUID: uuid.New(), Role: models.RoleAdmin}, userUUID, productUUID, 1)
	require.NoError(t, err)
}
