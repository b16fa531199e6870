package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/myeshop/order-system/order-service/saga"
	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
)

// PostgresSagaStore persists saga instances keyed by correlation ID.
// A row exists exactly for the lifetime of one fulfillment attempt.
type PostgresSagaStore struct {
	db *sqlx.DB
}

// NewPostgresSagaStore creates a new PostgresSagaStore
func NewPostgresSagaStore(db *sqlx.DB) *PostgresSagaStore {
	return &PostgresSagaStore{db: db}
}

type postgresSagaInstance struct {
	ID        string    `db:"id"`
	Step      string    `db:"step"`
	Reserved  []byte    `db:"reserved"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Save upserts the instance
func (s *PostgresSagaStore) Save(ctx context.Context, instance *saga.Instance) error {
	reserved, err := json.Marshal(instance.Reserved)
	if err != nil {
		return errors.Wrap(err, "failed to marshal reserved items")
	}

	query := `
		INSERT INTO saga_instances (id, step, reserved, created_at, updated_at)
		VALUES (:id, :step, :reserved, :created_at, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
			step = EXCLUDED.step,
			reserved = EXCLUDED.reserved,
			updated_at = EXCLUDED.updated_at`

	_, err = s.db.NamedExecContext(ctx, query, &postgresSagaInstance{
		ID:        instance.ID.String(),
		Step:      string(instance.Step),
		Reserved:  reserved,
		CreatedAt: instance.Timestamps.CreatedAt,
		UpdatedAt: instance.Timestamps.UpdatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to save saga instance")
	}
	return nil
}

// Find loads the live instance for a correlation ID, (nil, nil) when absent
func (s *PostgresSagaStore) Find(ctx context.Context, id models.ID) (*saga.Instance, error) {
	query := `
		SELECT id, step, reserved, created_at, updated_at
		FROM saga_instances
		WHERE id = $1`

	var pgInstance postgresSagaInstance
	err := s.db.GetContext(ctx, &pgInstance, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find saga instance")
	}

	var reserved []contracts.CartItem
	if err := json.Unmarshal(pgInstance.Reserved, &reserved); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal reserved items")
	}

	return &saga.Instance{
		ID:       models.ID(pgInstance.ID),
		Step:     saga.Step(pgInstance.Step),
		Reserved: reserved,
		Timestamps: models.Timestamps{
			CreatedAt: pgInstance.CreatedAt,
			UpdatedAt: pgInstance.UpdatedAt,
		},
	}, nil
}

// Delete ends the instance and releases its correlation key
func (s *PostgresSagaStore) Delete(ctx context.Context, id models.ID) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM saga_instances WHERE id = $1", id.String())
	if err != nil {
		return errors.Wrap(err, "failed to delete saga instance")
	}
	return nil
}
