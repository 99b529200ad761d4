package cart

import (
	"context"
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

func NewCartRepository(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log: log,
		db:  db,
	}
}

func (cr *Repository) Cart(ctx context.Context, userUUID uuid.UUID) (*models.Cart, error) {
	const op = "repository.cart.Cart"

	const query = `
					SELECT user_uuid, product_uuid, quantity, unit_price, added_at
						FROM "cart_items"
						WHERE user_uuid = $1
						ORDER BY added_at
					`

	var items []models.CartItem
	if err := cr.db.SelectContext(ctx, &items, query, userUUID); err != nil {
		cr.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Cart{UserUUID: userUUID, Items: items}, nil
}

// Upsert merges an add into an existing line, summing quantities and
// re-snapshotting the unit price.
func (cr *Repository) Upsert(ctx context.Context, item models.CartItem) error {
	const op = "repository.cart.Upsert"

	const query = `
					INSERT INTO "cart_items" (user_uuid, product_uuid, quantity, unit_price)
						VALUES ($1, $2, $3, $4)
						ON CONFLICT (user_uuid, product_uuid)
						DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity,
						              unit_price = EXCLUDED.unit_price
					`

	if _, err := cr.db.ExecContext(ctx, query, item.UserUUID, item.ProductUUID, item.Quantity, item.UnitPrice); err != nil {
		cr.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (cr *Repository) UpdateQuantity(ctx context.Context, userUUID, productUUID uuid.UUID, quantity int, unitPrice decimal.Decimal) error {
	const op = "repository.cart.UpdateQuantity"

	const query = `
					UPDATE "cart_items"
						SET quantity = $3, unit_price = $4
						WHERE user_uuid = $1 AND product_uuid = $2
					`

	result, err := cr.db.ExecContext(ctx, query, userUUID, productUUID, quantity, unitPrice)
	if err != nil {
		cr.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		cr.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return internalErrors.ErrCartLineNotFound
	}

	return nil
}

func (cr *Repository) Remove(ctx context.Context, userUUID, productUUID uuid.UUID) error {
	const op = "repository.cart.Remove"

	const query = `DELETE FROM "cart_items" WHERE user_uuid = $1 AND product_uuid = $2`

	result, err := cr.db.ExecContext(ctx, query, userUUID, productUUID)
	if err != nil {
		cr.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		cr.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return internalErrors.ErrCartLineNotFound
	}

	return nil
}

func (cr *Repository) Clear(ctx context.Context, userUUID uuid.UUID) error {
	const op = "repository.cart.Clear"

	const query = `DELETE FROM "cart_items" WHERE user_uuid = $1`

	if _, err := cr.db.ExecContext(ctx, query, userUUID); err != nil {
		cr.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
