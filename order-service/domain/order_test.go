package domain

import (
	"testing"

	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCartItems() []contracts.CartItem {
	return []contracts.CartItem{
		{ProductID: models.ID("550e8400-e29b-41d4-a716-446655440001"), Quantity: 2},
		{ProductID: models.ID("550e8400-e29b-41d4-a716-446655440002"), Quantity: 1},
	}
}

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	order, err := CreateOrder(
		models.GenerateUUID(),
		models.NewMoney(12500, "USD"),
		3,
		"buyer@example.com",
		models.ID("addr-1"),
		models.ID("pay-1"),
		validCartItems(),
	)
	require.NoError(t, err)
	return order
}

func TestCreateOrder(t *testing.T) {
	orderID := models.GenerateUUID()

	tests := []struct {
		name          string
		orderID       models.ID
		totalPrice    models.Money
		totalQuantity int
		cartItems     []contracts.CartItem
		expectedError string
	}{
		{
			name:          "successful creation",
			orderID:       orderID,
			totalPrice:    models.NewMoney(12500, "USD"),
			totalQuantity: 3,
			cartItems:     validCartItems(),
		},
		{
			name:          "missing order ID",
			orderID:       models.ID(""),
			totalPrice:    models.NewMoney(12500, "USD"),
			totalQuantity: 3,
			cartItems:     validCartItems(),
			expectedError: "order ID is required",
		},
		{
			name:          "negative total price",
			orderID:       orderID,
			totalPrice:    models.NewMoney(-1, "USD"),
			totalQuantity: 3,
			cartItems:     validCartItems(),
			expectedError: "total price must not be negative",
		},
		{
			name:          "negative total quantity",
			orderID:       orderID,
			totalPrice:    models.NewMoney(12500, "USD"),
			totalQuantity: -1,
			cartItems:     validCartItems(),
			expectedError: "total quantity must not be negative",
		},
		{
			name:          "empty cart",
			orderID:       orderID,
			totalPrice:    models.NewMoney(12500, "USD"),
			totalQuantity: 3,
			cartItems:     nil,
			expectedError: "cart must contain at least one item",
		},
		{
			name:          "cart item without product ID",
			orderID:       orderID,
			totalPrice:    models.NewMoney(12500, "USD"),
			totalQuantity: 3,
			cartItems: []contracts.CartItem{
				{ProductID: models.ID(""), Quantity: 1},
			},
			expectedError: "cart item product ID is required",
		},
		{
			name:          "cart item with zero quantity",
			orderID:       orderID,
			totalPrice:    models.NewMoney(12500, "USD"),
			totalQuantity: 3,
			cartItems: []contracts.CartItem{
				{ProductID: models.ID("550e8400-e29b-41d4-a716-446655440001"), Quantity: 0},
			},
			expectedError: "quantity must be positive",
		},
		{
			name:          "duplicate cart item",
			orderID:       orderID,
			totalPrice:    models.NewMoney(12500, "USD"),
			totalQuantity: 3,
			cartItems: []contracts.CartItem{
				{ProductID: models.ID("550e8400-e29b-41d4-a716-446655440001"), Quantity: 1},
				{ProductID: models.ID("550e8400-e29b-41d4-a716-446655440001"), Quantity: 2},
			},
			expectedError: "duplicate cart item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := CreateOrder(
				tt.orderID,
				tt.totalPrice,
				tt.totalQuantity,
				"buyer@example.com",
				models.ID("addr-1"),
				models.ID("pay-1"),
				tt.cartItems,
			)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, order)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, order)
			assert.Equal(t, tt.orderID, order.ID)
			assert.Equal(t, StatusCreated, order.Status)
			assert.Equal(t, ReasonNone, order.Reason)
			assert.Equal(t, tt.cartItems, order.CartItems)

			require.Len(t, order.Events(), 1)
			event := order.Events()[0]
			assert.Equal(t, events.OrderCreatedEvent, event.EventType)
			assert.Equal(t, tt.orderID, event.AggregateID)
			assert.Equal(t, tt.orderID, event.CorrelationID)
		})
	}
}

func TestOrder_Cancel(t *testing.T) {
	order := newTestOrder(t)
	createdAt := order.Timestamps.CreatedAt

	err := order.Cancel()
	require.NoError(t, err)

	assert.Equal(t, StatusCanceled, order.Status)
	assert.Equal(t, ReasonStockUnavailable, order.Reason)
	assert.Equal(t, createdAt, order.Timestamps.CreatedAt)
	assert.False(t, order.Timestamps.UpdatedAt.Before(createdAt))

	require.Len(t, order.Events(), 2)
	assert.Equal(t, events.OrderCanceledEvent, order.Events()[1].EventType)
}

func TestOrder_Approve(t *testing.T) {
	order := newTestOrder(t)

	err := order.Approve()
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, order.Status)
	assert.Equal(t, ReasonNone, order.Reason)

	require.Len(t, order.Events(), 2)
	assert.Equal(t, events.OrderApprovedEvent, order.Events()[1].EventType)
}

func TestOrder_Reject(t *testing.T) {
	order := newTestOrder(t)

	err := order.Reject()
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, order.Status)
	assert.Equal(t, ReasonPaymentFailed, order.Reason)

	require.Len(t, order.Events(), 2)
	assert.Equal(t, events.OrderRejectedEvent, order.Events()[1].EventType)
}

func TestOrder_TerminalStatusRejectsCommands(t *testing.T) {
	terminalStates := []struct {
		name       string
		transition func(*Order) error
	}{
		{"canceled", func(o *Order) error { return o.Cancel() }},
		{"approved", func(o *Order) error { return o.Approve() }},
		{"rejected", func(o *Order) error { return o.Reject() }},
	}

	for _, ts := range terminalStates {
		t.Run(ts.name, func(t *testing.T) {
			order := newTestOrder(t)
			require.NoError(t, ts.transition(order))
			eventCount := len(order.Events())

			assert.ErrorIs(t, order.Cancel(), ErrOrderFinalized)
			assert.ErrorIs(t, order.Approve(), ErrOrderFinalized)
			assert.ErrorIs(t, order.Reject(), ErrOrderFinalized)

			// A refused command raises nothing
			assert.Len(t, order.Events(), eventCount)
		})
	}
}

func TestReplay(t *testing.T) {
	t.Run("empty stream", func(t *testing.T) {
		order, err := Replay(nil)
		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.Nil(t, order)
	})

	t.Run("stream must start with creation", func(t *testing.T) {
		orderID := models.GenerateUUID()
		history := []*events.Event{
			events.NewEvent(orderID, events.OrderApprovedEvent, OrderApprovedData{
				OrderID: orderID,
				Status:  StatusApproved,
			}),
		}

		order, err := Replay(history)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "stream must start with order.created")
		assert.Nil(t, order)
	})

	t.Run("rebuilds state from history", func(t *testing.T) {
		original := newTestOrder(t)
		require.NoError(t, original.Approve())
		history := original.Events()

		replayed, err := Replay(history)
		require.NoError(t, err)

		assert.Equal(t, original.ID, replayed.ID)
		assert.Equal(t, original.TotalPrice, replayed.TotalPrice)
		assert.Equal(t, original.TotalQuantity, replayed.TotalQuantity)
		assert.Equal(t, StatusApproved, replayed.Status)
		assert.Equal(t, original.CartItems, replayed.CartItems)
		assert.Equal(t, original.Timestamps.CreatedAt, replayed.Timestamps.CreatedAt)
		assert.Equal(t, original.Timestamps.UpdatedAt, replayed.Timestamps.UpdatedAt)
		assert.Empty(t, replayed.Events())
	})

	t.Run("replay is deterministic", func(t *testing.T) {
		original := newTestOrder(t)
		require.NoError(t, original.Reject())
		history := original.Events()

		first, err := Replay(history)
		require.NoError(t, err)
		second, err := Replay(history)
		require.NoError(t, err)

		assert.Equal(t, first.Status, second.Status)
		assert.Equal(t, first.Reason, second.Reason)
		assert.Equal(t, first.Timestamps, second.Timestamps)
	})

	t.Run("unknown event types are skipped", func(t *testing.T) {
		original := newTestOrder(t)
		history := append(original.Events(),
			events.NewEvent(original.ID, "order.annotated", map[string]string{"note": "gift"}))

		replayed, err := Replay(history)
		require.NoError(t, err)
		assert.Equal(t, StatusCreated, replayed.Status)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusCreated.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}
