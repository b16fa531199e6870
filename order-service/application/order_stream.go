package application

import (
	"context"

	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
)

// transitionOrder replays the order's stream, runs the transition and
// commits the resulting events with optimistic concurrency against the
// stream length observed at load time.
func transitionOrder(
	ctx context.Context,
	eventStore events.EventStore,
	eventPublisher events.Publisher,
	orderID models.ID,
	transition func(*domain.Order) error,
) error {
	history, err := eventStore.Load(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "failed to load order stream")
	}

	order, err := domain.Replay(history)
	if err != nil {
		return err
	}

	if err := transition(order); err != nil {
		return err
	}

	if err := eventStore.Append(ctx, orderID, order.Events(), len(history)); err != nil {
		return errors.Wrap(err, "failed to append order events")
	}

	if err := eventPublisher.Publish(ctx, order.Events()...); err != nil {
		return errors.Wrap(err, "failed to publish order events")
	}
	order.ClearEvents()

	return nil
}
