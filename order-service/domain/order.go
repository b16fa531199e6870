package domain

import (
	"context"
	"time"

	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
)

var (
	// ErrOrderFinalized is returned when a command targets an order
	// whose status is already terminal.
	ErrOrderFinalized = errors.New("order already reached a terminal status")

	// ErrOrderNotFound is returned when no event stream exists for an order
	ErrOrderNotFound = errors.New("order not found")
)

// Order aggregate root. State mutates only through event application so
// that replaying the stream from the event log reconstructs it exactly.
type Order struct {
	ID            models.ID
	TotalPrice    models.Money
	TotalQuantity int
	Status        Status
	Reason        Reason
	CustomerEmail string
	AddressID     models.ID
	PaymentID     models.ID
	CartItems     []contracts.CartItem
	Timestamps    models.Timestamps
	Version       models.Version

	events []*events.Event
}

// CreateOrder factory method. The order identifier is generated by the
// caller and is immutable afterwards.
func CreateOrder(
	orderID models.ID,
	totalPrice models.Money,
	totalQuantity int,
	customerEmail string,
	addressID models.ID,
	paymentID models.ID,
	cartItems []contracts.CartItem,
) (*Order, error) {
	if orderID.IsEmpty() {
		return nil, errors.New("order ID is required")
	}
	if totalPrice.IsNegative() {
		return nil, errors.New("total price must not be negative")
	}
	if totalQuantity < 0 {
		return nil, errors.New("total quantity must not be negative")
	}
	if len(cartItems) == 0 {
		return nil, errors.New("cart must contain at least one item")
	}

	seen := make(map[models.ID]struct{}, len(cartItems))
	for _, item := range cartItems {
		if item.ProductID.IsEmpty() {
			return nil, errors.New("cart item product ID is required")
		}
		if item.Quantity <= 0 {
			return nil, errors.Errorf("cart item %s quantity must be positive", item.ProductID)
		}
		if _, dup := seen[item.ProductID]; dup {
			return nil, errors.Errorf("duplicate cart item for product %s", item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
	}

	order := &Order{}
	now := time.Now()

	event := events.NewEvent(orderID, events.OrderCreatedEvent, OrderCreatedData{
		OrderID:       orderID,
		TotalPrice:    totalPrice,
		TotalQuantity: totalQuantity,
		Status:        StatusCreated,
		CustomerEmail: customerEmail,
		AddressID:     addressID,
		PaymentID:     paymentID,
		CartItems:     cartItems,
		DateCreated:   now,
		LastUpdated:   now,
	}).WithCorrelationID(orderID)

	if err := order.raise(event); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel moves the order to canceled; only reachable while the order is
// still in created (stock-unavailable compensation path).
func (o *Order) Cancel() error {
	if o.Status.IsTerminal() {
		return ErrOrderFinalized
	}
	return o.raise(events.NewEvent(o.ID, events.OrderCanceledEvent, OrderCanceledData{
		OrderID: o.ID,
		Status:  StatusCanceled,
		Reason:  ReasonStockUnavailable,
	}).WithCorrelationID(o.ID))
}

// Approve marks the order fulfilled after a successful charge
func (o *Order) Approve() error {
	if o.Status.IsTerminal() {
		return ErrOrderFinalized
	}
	return o.raise(events.NewEvent(o.ID, events.OrderApprovedEvent, OrderApprovedData{
		OrderID: o.ID,
		Status:  StatusApproved,
	}).WithCorrelationID(o.ID))
}

// Reject marks the order failed on the payment path
func (o *Order) Reject() error {
	if o.Status.IsTerminal() {
		return ErrOrderFinalized
	}
	return o.raise(events.NewEvent(o.ID, events.OrderRejectedEvent, OrderRejectedData{
		OrderID: o.ID,
		Status:  StatusRejected,
		Reason:  ReasonPaymentFailed,
	}).WithCorrelationID(o.ID))
}

// Events returns the uncommitted domain events
func (o *Order) Events() []*events.Event {
	return o.events
}

// ClearEvents drops the uncommitted events after they are persisted
func (o *Order) ClearEvents() {
	o.events = nil
}

// raise applies the event to the aggregate and records it for persistence
func (o *Order) raise(event *events.Event) error {
	if err := o.apply(event); err != nil {
		return err
	}
	o.events = append(o.events, event)
	return nil
}

// apply is the pure event-sourcing handler: (state, event) -> state.
// It performs no I/O and derives timestamps from the event itself so
// re-application during replay stays deterministic.
func (o *Order) apply(event *events.Event) error {
	switch event.EventType {
	case events.OrderCreatedEvent:
		var data OrderCreatedData
		if err := event.UnmarshalPayload(&data); err != nil {
			return errors.Wrap(err, "failed to decode order created payload")
		}
		o.ID = data.OrderID
		o.TotalPrice = data.TotalPrice
		o.TotalQuantity = data.TotalQuantity
		o.Status = data.Status
		o.Reason = ReasonNone
		o.CustomerEmail = data.CustomerEmail
		o.AddressID = data.AddressID
		o.PaymentID = data.PaymentID
		o.CartItems = data.CartItems
		o.Timestamps = models.Timestamps{CreatedAt: data.DateCreated, UpdatedAt: data.LastUpdated}
		o.Version = models.NewVersion()

	case events.OrderCanceledEvent:
		var data OrderCanceledData
		if err := event.UnmarshalPayload(&data); err != nil {
			return errors.Wrap(err, "failed to decode order canceled payload")
		}
		o.Status = data.Status
		o.Reason = data.Reason
		o.Timestamps.UpdatedAt = event.Timestamp
		o.Version = o.Version.Update()

	case events.OrderApprovedEvent:
		var data OrderApprovedData
		if err := event.UnmarshalPayload(&data); err != nil {
			return errors.Wrap(err, "failed to decode order approved payload")
		}
		o.Status = data.Status
		o.Reason = ReasonNone
		o.Timestamps.UpdatedAt = event.Timestamp
		o.Version = o.Version.Update()

	case events.OrderRejectedEvent:
		var data OrderRejectedData
		if err := event.UnmarshalPayload(&data); err != nil {
			return errors.Wrap(err, "failed to decode order rejected payload")
		}
		o.Status = data.Status
		o.Reason = data.Reason
		o.Timestamps.UpdatedAt = event.Timestamp
		o.Version = o.Version.Update()

	default:
		// Unknown event types are skipped so adding events later does
		// not break replay of old streams.
	}

	return nil
}

// Replay folds an event history into an order, starting from empty
// state. Folding the same history any number of times yields the same
// final state.
func Replay(history []*events.Event) (*Order, error) {
	if len(history) == 0 {
		return nil, ErrOrderNotFound
	}
	if history[0].EventType != events.OrderCreatedEvent {
		return nil, errors.Errorf("stream must start with %s, got %s",
			events.OrderCreatedEvent, history[0].EventType)
	}

	order := &Order{}
	for _, event := range history {
		if err := order.apply(event); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// OrderRepository is the order read model, projected from the event
// stream for queries that must not replay it.
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id models.ID) (*Order, error)
}
