package application

import (
	"context"
	"testing"

	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/order-service/mocks"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveOrder_Execute(t *testing.T) {
	orderID := models.GenerateUUID()

	t.Run("successful approval", func(t *testing.T) {
		mockStore := mocks.NewMockEventStore(t)
		mockPublisher := mocks.NewMockPublisher(t)

		history := orderHistory(t, orderID)
		mockStore.EXPECT().Load(mock.Anything, orderID).Return(history, nil).Once()
		mockStore.EXPECT().
			Append(mock.Anything, orderID, mock.MatchedBy(func(evts []*events.Event) bool {
				return len(evts) == 1 && evts[0].EventType == events.OrderApprovedEvent
			}), len(history)).
			Return(nil).Once()
		mockPublisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		useCase := NewApproveOrder(mockStore, mockPublisher)

		err := useCase.Execute(context.Background(), &ApproveOrderCommand{OrderID: orderID})
		require.NoError(t, err)
	})

	t.Run("missing order ID", func(t *testing.T) {
		useCase := NewApproveOrder(mocks.NewMockEventStore(t), mocks.NewMockPublisher(t))

		err := useCase.Execute(context.Background(), &ApproveOrderCommand{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "order ID is required")
	})

	t.Run("order already finalized", func(t *testing.T) {
		mockStore := mocks.NewMockEventStore(t)
		mockPublisher := mocks.NewMockPublisher(t)

		mockStore.EXPECT().Load(mock.Anything, orderID).
			Return(canceledHistory(t, orderID), nil).Once()

		useCase := NewApproveOrder(mockStore, mockPublisher)

		err := useCase.Execute(context.Background(), &ApproveOrderCommand{OrderID: orderID})
		assert.ErrorIs(t, err, domain.ErrOrderFinalized)
	})
}
