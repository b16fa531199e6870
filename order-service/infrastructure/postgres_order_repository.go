package infrastructure

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
)

// PostgresOrderRepository implements the order read model using
// PostgreSQL. It is a projection of the event stream, refreshed by the
// event handlers; the write side never reads it.
type PostgresOrderRepository struct {
	db *sqlx.DB
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(db *sqlx.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// postgresOrder represents an order row in the read model
type postgresOrder struct {
	ID            string    `db:"id"`
	TotalAmount   int64     `db:"total_amount"`
	Currency      string    `db:"currency"`
	TotalQuantity int       `db:"total_quantity"`
	Status        string    `db:"status"`
	Reason        string    `db:"reason"`
	CustomerEmail string    `db:"customer_email"`
	AddressID     string    `db:"address_id"`
	PaymentID     string    `db:"payment_id"`
	CartItems     []byte    `db:"cart_items"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	Version       int       `db:"version"`
}

// Save upserts the projected order. The version check keeps a stale
// projection from overwriting a newer one when events are redelivered.
func (r *PostgresOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	pgOrder, err := r.toPostgres(order)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (
			id, total_amount, currency, total_quantity, status, reason,
			customer_email, address_id, payment_id, cart_items,
			created_at, updated_at, version
		) VALUES (
			:id, :total_amount, :currency, :total_quantity, :status, :reason,
			:customer_email, :address_id, :payment_id, :cart_items,
			:created_at, :updated_at, :version
		)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			reason = EXCLUDED.reason,
			updated_at = EXCLUDED.updated_at,
			version = EXCLUDED.version
		WHERE orders.version < EXCLUDED.version`

	_, err = r.db.NamedExecContext(ctx, query, pgOrder)
	if err != nil {
		return errors.Wrap(err, "failed to save order projection")
	}

	return nil
}

// FindByID finds a projected order by ID
func (r *PostgresOrderRepository) FindByID(ctx context.Context, id models.ID) (*domain.Order, error) {
	query := `
		SELECT id, total_amount, currency, total_quantity, status, reason,
			   customer_email, address_id, payment_id, cart_items,
			   created_at, updated_at, version
		FROM orders
		WHERE id = $1`

	var pgOrder postgresOrder
	err := r.db.GetContext(ctx, &pgOrder, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Order not found
		}
		return nil, errors.Wrap(err, "failed to find order")
	}

	return r.toDomain(&pgOrder)
}

func (r *PostgresOrderRepository) toPostgres(order *domain.Order) (*postgresOrder, error) {
	cartItems, err := json.Marshal(order.CartItems)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal cart items")
	}

	return &postgresOrder{
		ID:            order.ID.String(),
		TotalAmount:   order.TotalPrice.Amount,
		Currency:      order.TotalPrice.Currency,
		TotalQuantity: order.TotalQuantity,
		Status:        string(order.Status),
		Reason:        string(order.Reason),
		CustomerEmail: order.CustomerEmail,
		AddressID:     order.AddressID.String(),
		PaymentID:     order.PaymentID.String(),
		CartItems:     cartItems,
		CreatedAt:     order.Timestamps.CreatedAt,
		UpdatedAt:     order.Timestamps.UpdatedAt,
		Version:       order.Version.Value,
	}, nil
}

func (r *PostgresOrderRepository) toDomain(pgOrder *postgresOrder) (*domain.Order, error) {
	var cartItems []contracts.CartItem
	if err := json.Unmarshal(pgOrder.CartItems, &cartItems); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal cart items")
	}

	return &domain.Order{
		ID:            models.ID(pgOrder.ID),
		TotalPrice:    models.NewMoney(pgOrder.TotalAmount, pgOrder.Currency),
		TotalQuantity: pgOrder.TotalQuantity,
		Status:        domain.Status(pgOrder.Status),
		Reason:        domain.Reason(pgOrder.Reason),
		CustomerEmail: pgOrder.CustomerEmail,
		AddressID:     models.ID(pgOrder.AddressID),
		PaymentID:     models.ID(pgOrder.PaymentID),
		CartItems:     cartItems,
		Timestamps: models.Timestamps{
			CreatedAt: pgOrder.CreatedAt,
			UpdatedAt: pgOrder.UpdatedAt,
		},
		Version: models.Version{Value: pgOrder.Version},
	}, nil
}
