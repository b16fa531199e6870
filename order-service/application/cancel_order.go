package application

import (
	"context"

	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
)

// CancelOrderCommand represents the command to cancel an order after a
// failed inventory reservation
type CancelOrderCommand struct {
	OrderID models.ID `json:"order_id"`
}

// CancelOrder use case
type CancelOrder struct {
	eventStore     events.EventStore
	eventPublisher events.Publisher
}

// NewCancelOrder creates a new CancelOrder use case
func NewCancelOrder(eventStore events.EventStore, eventPublisher events.Publisher) *CancelOrder {
	return &CancelOrder{
		eventStore:     eventStore,
		eventPublisher: eventPublisher,
	}
}

// Execute cancels the order
func (uc *CancelOrder) Execute(ctx context.Context, cmd *CancelOrderCommand) error {
	if cmd.OrderID.IsEmpty() {
		return errors.New("order ID is required")
	}

	return transitionOrder(ctx, uc.eventStore, uc.eventPublisher, cmd.OrderID,
		func(order *domain.Order) error {
			return order.Cancel()
		})
}
