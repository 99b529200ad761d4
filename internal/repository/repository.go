package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/marcheferme/marketplace_service/internal/repository/cart"
	"github.com/marcheferme/marketplace_service/internal/repository/order"
	"github.com/marcheferme/marketplace_service/internal/repository/outbox"
	"github.com/marcheferme/marketplace_service/internal/repository/product"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type Repository struct {
	Product *product.Repository
	Cart    *cart.Repository
	Order   *order.Repository
	Outbox  *outbox.Repository
}

func NewRepository(log logger.Logger, db *sqlx.DB) *Repository {
	productRepo := product.NewProductRepository(log, db)
	outboxRepo := outbox.New(log, db)

	return &Repository{
		Product: productRepo,
		Cart:    cart.NewCartRepository(log, db),
		Order:   order.NewOrderRepository(log, db, productRepo, outboxRepo),
		Outbox:  outboxRepo,
	}
}
