package application

import (
	"context"
	"testing"

	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/order-service/mocks"
	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderHistory builds an event stream for an order in created status
func orderHistory(t *testing.T, orderID models.ID) []*events.Event {
	t.Helper()
	order, err := domain.CreateOrder(
		orderID,
		models.NewMoney(12500, "USD"),
		3,
		"buyer@example.com",
		models.ID("550e8400-e29b-41d4-a716-446655440030"),
		models.ID("550e8400-e29b-41d4-a716-446655440020"),
		[]contracts.CartItem{
			{ProductID: models.ID("550e8400-e29b-41d4-a716-446655440001"), Quantity: 2},
			{ProductID: models.ID("550e8400-e29b-41d4-a716-446655440002"), Quantity: 1},
		},
	)
	require.NoError(t, err)
	return order.Events()
}

// canceledHistory extends the stream to a terminal status
func canceledHistory(t *testing.T, orderID models.ID) []*events.Event {
	t.Helper()
	history := orderHistory(t, orderID)
	order, err := domain.Replay(history)
	require.NoError(t, err)
	require.NoError(t, order.Cancel())
	return append(history, order.Events()...)
}

func TestCancelOrder_Execute(t *testing.T) {
	orderID := models.GenerateUUID()

	tests := []struct {
		name          string
		command       *CancelOrderCommand
		setupMocks    func(*mocks.MockEventStore, *mocks.MockPublisher)
		expectedError string
	}{
		{
			name:    "successful cancellation",
			command: &CancelOrderCommand{OrderID: orderID},
			setupMocks: func(store *mocks.MockEventStore, publisher *mocks.MockPublisher) {
				history := orderHistory(t, orderID)
				store.EXPECT().Load(mock.Anything, orderID).Return(history, nil).Once()
				store.EXPECT().
					Append(mock.Anything, orderID, mock.MatchedBy(func(evts []*events.Event) bool {
						return len(evts) == 1 && evts[0].EventType == events.OrderCanceledEvent
					}), len(history)).
					Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:          "missing order ID",
			command:       &CancelOrderCommand{},
			setupMocks:    func(*mocks.MockEventStore, *mocks.MockPublisher) {},
			expectedError: "order ID is required",
		},
		{
			name:    "order not found",
			command: &CancelOrderCommand{OrderID: orderID},
			setupMocks: func(store *mocks.MockEventStore, publisher *mocks.MockPublisher) {
				store.EXPECT().Load(mock.Anything, orderID).Return(nil, nil).Once()
			},
			expectedError: "order not found",
		},
		{
			name:    "load failure",
			command: &CancelOrderCommand{OrderID: orderID},
			setupMocks: func(store *mocks.MockEventStore, publisher *mocks.MockPublisher) {
				store.EXPECT().Load(mock.Anything, orderID).
					Return(nil, errors.New("connection refused")).Once()
			},
			expectedError: "failed to load order stream",
		},
		{
			name:    "order already finalized",
			command: &CancelOrderCommand{OrderID: orderID},
			setupMocks: func(store *mocks.MockEventStore, publisher *mocks.MockPublisher) {
				store.EXPECT().Load(mock.Anything, orderID).
					Return(canceledHistory(t, orderID), nil).Once()
			},
			expectedError: domain.ErrOrderFinalized.Error(),
		},
		{
			name:    "concurrent append conflict",
			command: &CancelOrderCommand{OrderID: orderID},
			setupMocks: func(store *mocks.MockEventStore, publisher *mocks.MockPublisher) {
				history := orderHistory(t, orderID)
				store.EXPECT().Load(mock.Anything, orderID).Return(history, nil).Once()
				store.EXPECT().
					Append(mock.Anything, orderID, mock.Anything, len(history)).
					Return(errors.New("stream version mismatch")).Once()
			},
			expectedError: "failed to append order events",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := mocks.NewMockEventStore(t)
			mockPublisher := mocks.NewMockPublisher(t)
			tt.setupMocks(mockStore, mockPublisher)

			useCase := NewCancelOrder(mockStore, mockPublisher)

			err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
