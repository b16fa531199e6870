package handlers

import (
	"context"

	"github.com/myeshop/order-system/order-service/application"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DedupGuard records event IDs whose processing completed. Redeliveries
// of completed events are dropped; an event is marked only after its
// handlers succeed, so a transient failure leaves it unmarked and the
// next delivery runs the handlers again.
type DedupGuard interface {
	Seen(ctx context.Context, eventID models.ID) (bool, error)
	MarkProcessed(ctx context.Context, eventID models.ID) (seen bool, err error)
}

// OrderEventHandlers contains event handlers for the order service
type OrderEventHandlers struct {
	dedup        DedupGuard
	projectOrder *application.ProjectOrder
	saga         events.EventHandler
	logger       *zap.Logger
}

// NewOrderEventHandlers creates new order event handlers
func NewOrderEventHandlers(
	dedup DedupGuard,
	projectOrder *application.ProjectOrder,
	saga events.EventHandler,
	logger *zap.Logger,
) *OrderEventHandlers {
	return &OrderEventHandlers{
		dedup:        dedup,
		projectOrder: projectOrder,
		saga:         saga,
		logger:       logger,
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *OrderEventHandlers) HandlerID() string {
	return "order-service-event-handler"
}

// Handle implements the events.EventHandler interface. The event is
// marked processed only after dispatch succeeds: on a transient failure
// the error propagates, the message redelivers unmarked and dispatch
// runs again. The projection and the saga tolerate the double run that
// a crash between dispatch and mark can cause.
func (h *OrderEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	seen, err := h.dedup.Seen(ctx, event.ID)
	if err != nil {
		return errors.Wrap(err, "failed to deduplicate event")
	}
	if seen {
		h.logger.Info("duplicate event dropped",
			zap.String("event_id", event.ID.String()),
			zap.String("event_type", event.EventType))
		return nil
	}

	if err := h.dispatch(ctx, event); err != nil {
		return err
	}

	if _, err := h.dedup.MarkProcessed(ctx, event.ID); err != nil {
		return errors.Wrap(err, "failed to record processed event")
	}
	return nil
}

func (h *OrderEventHandlers) dispatch(ctx context.Context, event *events.Event) error {
	switch event.EventType {
	case events.OrderCreatedEvent,
		events.OrderCanceledEvent,
		events.OrderApprovedEvent,
		events.OrderRejectedEvent:
		if err := h.projectOrder.Execute(ctx, event.AggregateID); err != nil {
			return errors.Wrap(err, "failed to project order")
		}
		return h.saga.Handle(ctx, event)
	case events.PaymentProcessedEvent:
		return h.saga.Handle(ctx, event)
	default:
		// Unknown event type, ignore
		return nil
	}
}
