package application

import (
	"context"

	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
)

// ProjectOrder refreshes the order read model from the event stream.
// Rebuilding from the full stream instead of patching the row keeps the
// projection idempotent under redelivered events.
type ProjectOrder struct {
	eventStore      events.EventStore
	orderRepository domain.OrderRepository
}

// NewProjectOrder creates a new ProjectOrder use case
func NewProjectOrder(eventStore events.EventStore, orderRepository domain.OrderRepository) *ProjectOrder {
	return &ProjectOrder{
		eventStore:      eventStore,
		orderRepository: orderRepository,
	}
}

// Execute projects the order identified by orderID
func (uc *ProjectOrder) Execute(ctx context.Context, orderID models.ID) error {
	history, err := uc.eventStore.Load(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "failed to load order stream")
	}

	order, err := domain.Replay(history)
	if err != nil {
		return err
	}

	if err := uc.orderRepository.Save(ctx, order); err != nil {
		return errors.Wrap(err, "failed to save order projection")
	}
	return nil
}
