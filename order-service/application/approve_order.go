package application

import (
	"context"

	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
)

// ApproveOrderCommand represents the command to approve an order after
// its payment cleared
type ApproveOrderCommand struct {
	OrderID models.ID `json:"order_id"`
}

// ApproveOrder use case
type ApproveOrder struct {
	eventStore     events.EventStore
	eventPublisher events.Publisher
}

// NewApproveOrder creates a new ApproveOrder use case
func NewApproveOrder(eventStore events.EventStore, eventPublisher events.Publisher) *ApproveOrder {
	return &ApproveOrder{
		eventStore:     eventStore,
		eventPublisher: eventPublisher,
	}
}

// Execute approves the order
func (uc *ApproveOrder) Execute(ctx context.Context, cmd *ApproveOrderCommand) error {
	if cmd.OrderID.IsEmpty() {
		return errors.New("order ID is required")
	}

	return transitionOrder(ctx, uc.eventStore, uc.eventPublisher, cmd.OrderID,
		func(order *domain.Order) error {
			return order.Approve()
		})
}
