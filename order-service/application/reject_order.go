package application

import (
	"context"

	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
)

// RejectOrderCommand represents the command to reject an order after a
// payment failure
type RejectOrderCommand struct {
	OrderID models.ID `json:"order_id"`
}

// RejectOrder use case
type RejectOrder struct {
	eventStore     events.EventStore
	eventPublisher events.Publisher
}

// NewRejectOrder creates a new RejectOrder use case
func NewRejectOrder(eventStore events.EventStore, eventPublisher events.Publisher) *RejectOrder {
	return &RejectOrder{
		eventStore:     eventStore,
		eventPublisher: eventPublisher,
	}
}

// Execute rejects the order
func (uc *RejectOrder) Execute(ctx context.Context, cmd *RejectOrderCommand) error {
	if cmd.OrderID.IsEmpty() {
		return errors.New("order ID is required")
	}

	return transitionOrder(ctx, uc.eventStore, uc.eventPublisher, cmd.OrderID,
		func(order *domain.Order) error {
			return order.Reject()
		})
}
