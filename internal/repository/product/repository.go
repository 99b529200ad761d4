// Package product holds the product reads and the inventory ledger. The
// `available` column is only ever written through Reserve, Release and
// Adjust; each is a single conditional UPDATE so concurrent callers can
// never oversell.
package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
	internalErrors "github.com/marcheferme/marketplace_service/internal/lib/errors"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type Repository struct {
	log logger.Logger
	db  *sqlx.DB
}

func NewProductRepository(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log: log,
		db:  db,
	}
}

func (pr *Repository) Product(ctx context.Context, productUUID uuid.UUID) (*models.Product, error) {
	const op = "repository.product.Product"

	const query = `
					SELECT uuid, producer_uuid, name, price, available, deleted
						FROM "products"
						WHERE uuid = $1 AND deleted = FALSE
					`

	var product models.Product
	if err := pr.db.GetContext(ctx, &product, query, productUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrProductNotFound
		}
		pr.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &product, nil
}

// Reserve atomically decrements available stock, requiring
// available >= quantity, and returns the live price for the order line
// snapshot. ext may be a transaction or the pool.
func (pr *Repository) Reserve(ctx context.Context, ext sqlx.ExtContext, productUUID uuid.UUID, quantity int) (decimal.Decimal, error) {
	const op = "repository.product.Reserve"

	const reserveQuery = `
							UPDATE "products"
								SET available = available - $2
								WHERE uuid = $1 AND deleted = FALSE AND available >= $2
								RETURNING price
							`

	var price decimal.Decimal
	err := sqlx.GetContext(ctx, ext, &price, reserveQuery, productUUID, quantity)
	if err == nil {
		return price, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		pr.log.Error(op, logger.Err(err))
		return decimal.Decimal{}, fmt.Errorf("%s: %w", op, err)
	}

	// No row matched: either the product is gone or stock is short.
	const availableQuery = `SELECT available FROM "products" WHERE uuid = $1 AND deleted = FALSE`

	var available int
	if err = sqlx.GetContext(ctx, ext, &available, availableQuery, productUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Decimal{}, internalErrors.ErrProductNotFound
		}
		pr.log.Error(op, logger.Err(err))
		return decimal.Decimal{}, fmt.Errorf("%s: %w", op, err)
	}

	return decimal.Decimal{}, &internalErrors.InsufficientStockError{
		ProductUUID: productUUID,
		Requested:   quantity,
		Available:   available,
	}
}

// Release returns reserved stock. Idempotency is the caller's concern;
// cancellation releases inside the same transaction that flips line
// statuses, so a line can never be released twice.
func (pr *Repository) Release(ctx context.Context, ext sqlx.ExtContext, productUUID uuid.UUID, quantity int) error {
	const op = "repository.product.Release"

	const releaseQuery = `UPDATE "products" SET available = available + $2 WHERE uuid = $1`

	if _, err := ext.ExecContext(ctx, releaseQuery, productUUID, quantity); err != nil {
		pr.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Adjust applies a producer or admin stock correction. It fails with
// ErrInvalidAdjustment rather than clamping when the result would be
// negative.
func (pr *Repository) Adjust(ctx context.Context, productUUID uuid.UUID, delta int) error {
	const op = "repository.product.Adjust"

	const adjustQuery = `
							UPDATE "products"
								SET available = available + $2
								WHERE uuid = $1 AND deleted = FALSE AND available + $2 >= 0
							`

	result, err := pr.db.ExecContext(ctx, adjustQuery, productUUID, delta)
	if err != nil {
		pr.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		pr.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		const existsQuery = `SELECT EXISTS (SELECT 1 FROM "products" WHERE uuid = $1 AND deleted = FALSE)`

		var exists bool
		if err = pr.db.GetContext(ctx, &exists, existsQuery, productUUID); err != nil {
			pr.log.Error(op, logger.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
		if !exists {
			return internalErrors.ErrProductNotFound
		}
		return internalErrors.ErrInvalidAdjustment
	}

	return nil
}
