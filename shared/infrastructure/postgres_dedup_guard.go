package infrastructure

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
)

// uniqueViolation is the PostgreSQL error code for duplicate keys
const uniqueViolation = "23505"

// PostgresDedupGuard records processed event IDs behind a unique
// constraint. Delivery is at-least-once: consumers check Seen before
// acting and call MarkProcessed only once their effects are durable, so
// a failed delivery stays unmarked and redelivers.
type PostgresDedupGuard struct {
	db *sqlx.DB
}

// NewPostgresDedupGuard creates a new PostgresDedupGuard
func NewPostgresDedupGuard(db *sqlx.DB) *PostgresDedupGuard {
	return &PostgresDedupGuard{db: db}
}

// Seen reports whether the event ID was recorded by a completed delivery
func (g *PostgresDedupGuard) Seen(ctx context.Context, eventID models.ID) (bool, error) {
	var seen bool
	err := g.db.GetContext(ctx, &seen,
		"SELECT EXISTS (SELECT 1 FROM processed_events WHERE event_id = $1)", eventID.String())
	if err != nil {
		return false, errors.Wrap(err, "failed to check processed event")
	}
	return seen, nil
}

// MarkProcessed records the event ID. It reports seen=true without
// error when the event was already recorded by an earlier delivery.
func (g *PostgresDedupGuard) MarkProcessed(ctx context.Context, eventID models.ID) (bool, error) {
	_, err := g.db.ExecContext(ctx,
		"INSERT INTO processed_events (event_id) VALUES ($1)", eventID.String())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return true, nil
		}
		return false, errors.Wrap(err, "failed to mark event processed")
	}
	return false, nil
}
