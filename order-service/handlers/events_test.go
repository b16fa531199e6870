package handlers

import (
	"context"
	"testing"

	"github.com/myeshop/order-system/order-service/application"
	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/order-service/mocks"
	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDedupGuard struct {
	seen    map[models.ID]bool
	seenErr error
	markErr error
}

func (g *stubDedupGuard) Seen(_ context.Context, eventID models.ID) (bool, error) {
	if g.seenErr != nil {
		return false, g.seenErr
	}
	return g.seen[eventID], nil
}

func (g *stubDedupGuard) MarkProcessed(_ context.Context, eventID models.ID) (bool, error) {
	if g.markErr != nil {
		return false, g.markErr
	}
	if g.seen[eventID] {
		return true, nil
	}
	if g.seen == nil {
		g.seen = map[models.ID]bool{}
	}
	g.seen[eventID] = true
	return false, nil
}

type recordingHandler struct {
	failures int
	handled  []*events.Event
}

func (h *recordingHandler) HandlerID() string { return "recording-handler" }

func (h *recordingHandler) Handle(_ context.Context, event *events.Event) error {
	if h.failures > 0 {
		h.failures--
		return errors.New("saga store unavailable")
	}
	h.handled = append(h.handled, event)
	return nil
}

func orderEvent(t *testing.T, eventType string) (*events.Event, models.ID) {
	t.Helper()
	orderID := models.GenerateUUID()
	return events.NewEvent(orderID, eventType, map[string]string{"order_id": orderID.String()}), orderID
}

func TestOrderEventHandlers_Handle(t *testing.T) {
	t.Run("order events hit the projection then the saga", func(t *testing.T) {
		event, orderID := orderEvent(t, events.OrderCreatedEvent)

		mockStore := mocks.NewMockEventStore(t)
		mockRepo := mocks.NewMockOrderRepository(t)
		mockStore.EXPECT().Load(mock.Anything, orderID).
			Return(orderCreatedHistory(t, orderID), nil).Once()
		mockRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

		saga := &recordingHandler{}
		h := NewOrderEventHandlers(&stubDedupGuard{}, application.NewProjectOrder(mockStore, mockRepo), saga, zap.NewNop())

		err := h.Handle(context.Background(), event)
		require.NoError(t, err)
		require.Len(t, saga.handled, 1)
		assert.Equal(t, event, saga.handled[0])
	})

	t.Run("payment events skip the projection", func(t *testing.T) {
		event, _ := orderEvent(t, events.PaymentProcessedEvent)

		saga := &recordingHandler{}
		h := NewOrderEventHandlers(&stubDedupGuard{}, application.NewProjectOrder(mocks.NewMockEventStore(t), mocks.NewMockOrderRepository(t)), saga, zap.NewNop())

		err := h.Handle(context.Background(), event)
		require.NoError(t, err)
		assert.Len(t, saga.handled, 1)
	})

	t.Run("redelivery of a completed event is dropped", func(t *testing.T) {
		event, _ := orderEvent(t, events.PaymentProcessedEvent)

		saga := &recordingHandler{}
		guard := &stubDedupGuard{}
		h := NewOrderEventHandlers(guard, application.NewProjectOrder(mocks.NewMockEventStore(t), mocks.NewMockOrderRepository(t)), saga, zap.NewNop())

		require.NoError(t, h.Handle(context.Background(), event))
		require.NoError(t, h.Handle(context.Background(), event))

		assert.Len(t, saga.handled, 1)
	})

	t.Run("retried event reaches the saga after a transient failure", func(t *testing.T) {
		event, _ := orderEvent(t, events.PaymentProcessedEvent)

		saga := &recordingHandler{failures: 1}
		guard := &stubDedupGuard{}
		h := NewOrderEventHandlers(guard, application.NewProjectOrder(mocks.NewMockEventStore(t), mocks.NewMockOrderRepository(t)), saga, zap.NewNop())

		// First delivery fails in the saga; the event must stay unmarked
		// so the redelivery is processed, not dropped.
		require.Error(t, h.Handle(context.Background(), event))
		assert.False(t, guard.seen[event.ID])

		require.NoError(t, h.Handle(context.Background(), event))
		require.Len(t, saga.handled, 1)
		assert.Equal(t, event, saga.handled[0])
	})

	t.Run("mark failure after dispatch is returned for redelivery", func(t *testing.T) {
		event, _ := orderEvent(t, events.PaymentProcessedEvent)

		saga := &recordingHandler{}
		guard := &stubDedupGuard{markErr: errors.New("connection refused")}
		h := NewOrderEventHandlers(guard, application.NewProjectOrder(mocks.NewMockEventStore(t), mocks.NewMockOrderRepository(t)), saga, zap.NewNop())

		err := h.Handle(context.Background(), event)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to record processed event")
		assert.Len(t, saga.handled, 1)
	})

	t.Run("unknown event type is ignored", func(t *testing.T) {
		event, _ := orderEvent(t, "inventory.restocked")

		saga := &recordingHandler{}
		h := NewOrderEventHandlers(&stubDedupGuard{}, application.NewProjectOrder(mocks.NewMockEventStore(t), mocks.NewMockOrderRepository(t)), saga, zap.NewNop())

		require.NoError(t, h.Handle(context.Background(), event))
		assert.Empty(t, saga.handled)
	})

	t.Run("dedup failure is returned for redelivery", func(t *testing.T) {
		event, _ := orderEvent(t, events.OrderCreatedEvent)

		saga := &recordingHandler{}
		guard := &stubDedupGuard{seenErr: errors.New("connection refused")}
		h := NewOrderEventHandlers(guard, application.NewProjectOrder(mocks.NewMockEventStore(t), mocks.NewMockOrderRepository(t)), saga, zap.NewNop())

		err := h.Handle(context.Background(), event)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to deduplicate event")
		assert.Empty(t, saga.handled)
	})
}

func orderCreatedHistory(t *testing.T, orderID models.ID) []*events.Event {
	t.Helper()
	order, err := domain.CreateOrder(
		orderID,
		models.NewMoney(12500, "USD"),
		1,
		"buyer@example.com",
		models.ID("550e8400-e29b-41d4-a716-446655440030"),
		models.ID("550e8400-e29b-41d4-a716-446655440020"),
		[]contracts.CartItem{
			{ProductID: models.ID("550e8400-e29b-41d4-a716-446655440001"), Quantity: 1},
		},
	)
	require.NoError(t, err)
	return order.Events()
}
