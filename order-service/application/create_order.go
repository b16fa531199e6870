package application

import (
	"context"

	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
)

// ErrInvalidCommand marks command validation failures so the transport
// layer can answer with a client error instead of a server error.
var ErrInvalidCommand = errors.New("invalid command")

// CreateOrderCommand represents the command to create an order
type CreateOrderCommand struct {
	TotalPrice    int64             `json:"total_price"`
	Currency      string            `json:"currency"`
	TotalQuantity int               `json:"total_quantity"`
	CustomerEmail string            `json:"customer_email"`
	AddressID     string            `json:"address_id"`
	PaymentID     string            `json:"payment_id"`
	CartItems     []CartItemPayload `json:"cart_items"`
}

// CartItemPayload is one cart line in the inbound request
type CartItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderResponse carries the generated order identifier
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// CreateOrder use case: generates a fresh order identifier, appends the
// creation event to the order's stream and publishes it. The caller's
// synchronous wait covers creation only; fulfillment continues in the saga.
type CreateOrder struct {
	eventStore     events.EventStore
	eventPublisher events.Publisher
}

// NewCreateOrder creates a new CreateOrder use case
func NewCreateOrder(eventStore events.EventStore, eventPublisher events.Publisher) *CreateOrder {
	return &CreateOrder{
		eventStore:     eventStore,
		eventPublisher: eventPublisher,
	}
}

// Execute executes the create order use case
func (uc *CreateOrder) Execute(ctx context.Context, cmd *CreateOrderCommand) (*CreateOrderResponse, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	// Address, payment and product identifiers are opaque references to
	// other services and are not validated here.
	cartItems := make([]contracts.CartItem, 0, len(cmd.CartItems))
	for _, item := range cmd.CartItems {
		cartItems = append(cartItems, contracts.CartItem{
			ProductID: models.ID(item.ProductID),
			Quantity:  item.Quantity,
		})
	}

	order, err := domain.CreateOrder(
		models.GenerateUUID(),
		models.NewMoney(cmd.TotalPrice, cmd.Currency),
		cmd.TotalQuantity,
		cmd.CustomerEmail,
		models.ID(cmd.AddressID),
		models.ID(cmd.PaymentID),
		cartItems,
	)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidCommand, err.Error())
	}

	if err := uc.eventStore.Append(ctx, order.ID, order.Events(), 0); err != nil {
		return nil, errors.Wrap(err, "failed to append order events")
	}

	if err := uc.eventPublisher.Publish(ctx, order.Events()...); err != nil {
		return nil, errors.Wrap(err, "failed to publish order events")
	}
	order.ClearEvents()

	return &CreateOrderResponse{
		OrderID: order.ID.String(),
	}, nil
}

func (uc *CreateOrder) validateCommand(cmd *CreateOrderCommand) error {
	if cmd.TotalPrice < 0 {
		return errors.Wrap(ErrInvalidCommand, "total price must not be negative")
	}
	if cmd.Currency == "" {
		return errors.Wrap(ErrInvalidCommand, "currency is required")
	}
	if cmd.TotalQuantity < 0 {
		return errors.Wrap(ErrInvalidCommand, "total quantity must not be negative")
	}
	if cmd.CustomerEmail == "" {
		return errors.Wrap(ErrInvalidCommand, "customer email is required")
	}
	if cmd.AddressID == "" {
		return errors.Wrap(ErrInvalidCommand, "address ID is required")
	}
	if cmd.PaymentID == "" {
		return errors.Wrap(ErrInvalidCommand, "payment ID is required")
	}
	if len(cmd.CartItems) == 0 {
		return errors.Wrap(ErrInvalidCommand, "cart items are required")
	}
	return nil
}
