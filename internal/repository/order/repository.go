package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
	internalErrors "github.com/marcheferme/marketplace_service/internal/lib/errors"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type stockLedger interface {
	Reserve(ctx context.Context, ext sqlx.ExtContext, productUUID uuid.UUID, quantity int) (decimal.Decimal, error)
	Release(ctx context.Context, ext sqlx.ExtContext, productUUID uuid.UUID, quantity int) error
}

type outboxInserter interface {
	Insert(ctx context.Context, ext sqlx.ExtContext, eventType models.EventType, payload any) error
}

type Repository struct {
	log    logger.Logger
	db     *sqlx.DB
	ledger stockLedger
	outbox outboxInserter
}

func NewOrderRepository(log logger.Logger, db *sqlx.DB, ledger stockLedger, outbox outboxInserter) *Repository {
	return &Repository{
		log:    log,
		db:     db,
		ledger: ledger,
		outbox: outbox,
	}
}

// Create turns cart items into a persisted order inside one serializable
// transaction: stock reservation, order and line inserts, the outbox event
// and the cart clear all commit or roll back together. A failed
// reservation aborts the whole attempt, so no stock stays decremented and
// the cart is untouched. Items must arrive sorted by ascending product
// uuid; concurrent checkouts then lock product rows in the same order.
func (or *Repository) Create(ctx context.Context, userUUID uuid.UUID, items []models.CartItem) (order *models.Order, err error) {
	const op = "repository.order.Create"

	tx, err := or.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil {
				or.log.Error(op, logger.Err(rollBackErr))
				err = errors.Join(err, fmt.Errorf("%s: rollback transaction: %w", op, rollBackErr))
			}
		}
	}()

	lines := make([]models.OrderLine, 0, len(items))
	totalAmount := decimal.Zero

	for _, item := range items {
		price, reserveErr := or.ledger.Reserve(ctx, tx, item.ProductUUID, item.Quantity)
		if reserveErr != nil {
			err = reserveErr
			return nil, err
		}

		var producerUUID uuid.UUID
		const producerQuery = `SELECT producer_uuid FROM "products" WHERE uuid = $1`
		if err = sqlx.GetContext(ctx, tx, &producerUUID, producerQuery, item.ProductUUID); err != nil {
			or.log.Error(op, logger.Err(err))
			return nil, fmt.Errorf("%s: producer lookup: %w", op, err)
		}

		lines = append(lines, models.OrderLine{
			ProductUUID:  item.ProductUUID,
			ProducerUUID: producerUUID,
			Quantity:     item.Quantity,
			UnitPrice:    price,
			Status:       models.LineStatusEnCours,
			Version:      1,
		})
		totalAmount = totalAmount.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order = &models.Order{UserUUID: userUUID, TotalAmount: totalAmount}

	const orderQuery = `INSERT INTO "orders" (user_uuid, total_amount) VALUES ($1, $2) RETURNING uuid, created_at`

	row := tx.QueryRowContext(ctx, orderQuery, userUUID, totalAmount)
	if err = row.Scan(&order.OrderUUID, &order.CreatedAt); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: insert order: %w", op, err)
	}

	const linesQuery = `INSERT INTO "order_lines" (order_uuid, product_uuid, producer_uuid, quantity, unit_price, status, version) VALUES %s`
	var values []interface{}
	var placeholders []string

	for i := range lines {
		lines[i].OrderUUID = order.OrderUUID
		values = append(values,
			order.OrderUUID, lines[i].ProductUUID, lines[i].ProducerUUID,
			lines[i].Quantity, lines[i].UnitPrice, lines[i].Status, lines[i].Version,
		)

		argID := i * 7
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			argID+1, argID+2, argID+3, argID+4, argID+5, argID+6, argID+7))
	}

	fullQuery := fmt.Sprintf(linesQuery, strings.Join(placeholders, ","))

	if _, err = tx.ExecContext(ctx, fullQuery, values...); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: insert order_lines: %w", op, err)
	}

	order.Lines = lines

	payload := models.OrderEventPayload{OrderUUID: order.OrderUUID, UserUUID: userUUID}
	if err = or.outbox.Insert(ctx, tx, models.OrderCreated, payload); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	const clearCartQuery = `DELETE FROM "cart_items" WHERE user_uuid = $1`

	if _, err = tx.ExecContext(ctx, clearCartQuery, userUUID); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: clear cart: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return order, nil
}

func (or *Repository) Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error) {
	const op = "repository.order.Order"

	const orderQuery = `SELECT uuid, user_uuid, total_amount, created_at FROM "orders" WHERE uuid = $1`

	var order models.Order
	if err := or.db.GetContext(ctx, &order, orderQuery, orderUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrOrderNotFound
		}
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	const linesQuery = `
						SELECT order_uuid, product_uuid, producer_uuid, quantity, unit_price, status, version
							FROM "order_lines"
							WHERE order_uuid = $1
						`

	if err := or.db.SelectContext(ctx, &order.Lines, linesQuery, orderUUID); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &order, nil
}

func (or *Repository) OrdersByUser(ctx context.Context, userUUID uuid.UUID) ([]models.Order, error) {
	const op = "repository.order.OrdersByUser"

	const query = `SELECT uuid FROM "orders" WHERE user_uuid = $1 ORDER BY created_at DESC`

	return or.ordersByHeaderQuery(ctx, op, query, userUUID)
}

// OrdersByProducer lists orders containing at least one of the producer's
// lines. The full order is returned; line ownership still gates mutation.
func (or *Repository) OrdersByProducer(ctx context.Context, producerUUID uuid.UUID) ([]models.Order, error) {
	const op = "repository.order.OrdersByProducer"

	const query = `
					SELECT DISTINCT o.uuid
						FROM "orders" o
						JOIN "order_lines" ol ON ol.order_uuid = o.uuid
						WHERE ol.producer_uuid = $1
					`

	return or.ordersByHeaderQuery(ctx, op, query, producerUUID)
}

func (or *Repository) ordersByHeaderQuery(ctx context.Context, op, query string, arg uuid.UUID) ([]models.Order, error) {
	var orderUUIDs []uuid.UUID
	if err := or.db.SelectContext(ctx, &orderUUIDs, query, arg); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(orderUUIDs) == 0 {
		return nil, nil
	}

	ordersMap, err := or.OrdersByUUIDs(ctx, orderUUIDs)
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(orderUUIDs))
	for _, orderUUID := range orderUUIDs {
		if order, ok := ordersMap[orderUUID]; ok {
			orders = append(orders, order)
		}
	}

	return orders, nil
}

func (or *Repository) OrdersByUUIDs(ctx context.Context, UUIDs []uuid.UUID) (map[uuid.UUID]models.Order, error) {
	const op = "repository.order.OrdersByUUIDs"

	ordersMap := make(map[uuid.UUID]models.Order, len(UUIDs))

	const orderQuery = `
						SELECT uuid, user_uuid, total_amount, created_at
							FROM "orders"
							WHERE uuid = ANY($1)
						`

	var orders []models.Order
	if err := or.db.SelectContext(ctx, &orders, orderQuery, pq.Array(UUIDs)); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, order := range orders {
		ordersMap[order.OrderUUID] = order
	}

	if len(ordersMap) == 0 {
		return nil, internalErrors.ErrOrderNotFound
	}

	const linesQuery = `
						SELECT order_uuid, product_uuid, producer_uuid, quantity, unit_price, status, version
							FROM "order_lines"
							WHERE order_uuid = ANY($1)
						`

	var lines []models.OrderLine
	if err := or.db.SelectContext(ctx, &lines, linesQuery, pq.Array(UUIDs)); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, line := range lines {
		order := ordersMap[line.OrderUUID]
		order.Lines = append(order.Lines, line)
		ordersMap[line.OrderUUID] = order
	}

	return ordersMap, nil
}

// UpdateLineStatus persists a single line transition under an optimistic
// version check. No row updated means another writer won the race. A
// transition to annulee releases the line's reserved stock in the same
// transaction, so a producer-side cancellation cannot strand inventory.
func (or *Repository) UpdateLineStatus(ctx context.Context, orderUUID, productUUID uuid.UUID, newStatus models.LineStatus, expectedVersion int) (err error) {
	const op = "repository.order.UpdateLineStatus"

	tx, err := or.db.BeginTxx(ctx, nil)
	if err != nil {
		or.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil {
				err = errors.Join(err, rollBackErr)
			}
		}
	}()

	const updateQuery = `
							UPDATE "order_lines"
								SET status = $1, version = version + 1
								WHERE order_uuid = $2 AND product_uuid = $3 AND version = $4
								RETURNING quantity
						`

	var quantity int
	if err = sqlx.GetContext(ctx, tx, &quantity, updateQuery, newStatus, orderUUID, productUUID, expectedVersion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = internalErrors.ErrConflict
			return err
		}
		or.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if newStatus == models.LineStatusAnnulee {
		if err = or.ledger.Release(ctx, tx, productUUID, quantity); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	payload := models.LineStatusEventPayload{OrderUUID: orderUUID, ProductUUID: productUUID, Status: newStatus}
	if err = or.outbox.Insert(ctx, tx, models.OrderStatusChanged, payload); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return tx.Commit()
}

// CancelLines marks every given line annulee and releases its reserved
// stock, all in one transaction. Each line is version-checked, so a racing
// delivery makes the whole cancellation fail with ErrConflict and nothing
// is released.
func (or *Repository) CancelLines(ctx context.Context, orderUUID uuid.UUID, lines []models.OrderLine) (err error) {
	const op = "repository.order.CancelLines"

	tx, err := or.db.BeginTxx(ctx, nil)
	if err != nil {
		or.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil {
				err = errors.Join(err, rollBackErr)
			}
		}
	}()

	const updateQuery = `
							UPDATE "order_lines"
								SET status = $1, version = version + 1
								WHERE order_uuid = $2 AND product_uuid = $3 AND version = $4
						`

	for _, line := range lines {
		result, execErr := tx.ExecContext(ctx, updateQuery, models.LineStatusAnnulee, orderUUID, line.ProductUUID, line.Version)
		if execErr != nil {
			or.log.Error(op, logger.Err(execErr))
			err = fmt.Errorf("%s: %w", op, execErr)
			return err
		}

		affected, raErr := result.RowsAffected()
		if raErr != nil {
			or.log.Error(op, logger.Err(raErr))
			err = fmt.Errorf("%s: %w", op, raErr)
			return err
		}
		if affected == 0 {
			err = internalErrors.ErrConflict
			return err
		}

		if err = or.ledger.Release(ctx, tx, line.ProductUUID, line.Quantity); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	var userUUID uuid.UUID
	const userQuery = `SELECT user_uuid FROM "orders" WHERE uuid = $1`
	if err = sqlx.GetContext(ctx, tx, &userUUID, userQuery, orderUUID); err != nil {
		or.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	payload := models.OrderEventPayload{OrderUUID: orderUUID, UserUUID: userUUID}
	if err = or.outbox.Insert(ctx, tx, models.OrderCancelled, payload); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return tx.Commit()
}
