package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type Repository struct {
	log logger.Logger
	db  *sqlx.DB
}

func New(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{log: log, db: db}
}

// Insert writes an event row inside the caller's transaction so the event
// exists iff the state change committed.
func (or *Repository) Insert(ctx context.Context, ext sqlx.ExtContext, eventType models.EventType, payload any) error {
	const op = "repository.outbox.Insert"

	raw, err := json.Marshal(payload)
	if err != nil {
		or.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: marshal payload: %w", op, err)
	}

	const query = `INSERT INTO "outbox" (event_type, payload) VALUES ($1, $2)`

	if _, err = ext.ExecContext(ctx, query, eventType, raw); err != nil {
		or.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

const fetchLimit = 100

func (or *Repository) FetchUnprocessedMessages(ctx context.Context) ([]models.OutboxMessage, error) {
	const op = "repository.outbox.FetchUnprocessedMessages"

	const query = `
					SELECT id, event_type, payload, processed
						FROM "outbox"
						WHERE processed = FALSE
						ORDER BY id
						LIMIT $1
					`

	var messages []models.OutboxMessage
	if err := or.db.SelectContext(ctx, &messages, query, fetchLimit); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return messages, nil
}

func (or *Repository) Delete(ctx context.Context, eventIDs []int) error {
	const op = "repository.outbox.Delete"

	const query = `DELETE FROM "outbox" WHERE id = ANY($1)`

	if _, err := or.db.ExecContext(ctx, query, pq.Array(eventIDs)); err != nil {
		or.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
