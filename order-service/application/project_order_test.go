package application

import (
	"context"
	"testing"

	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/order-service/mocks"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectOrder_Execute(t *testing.T) {
	orderID := models.GenerateUUID()

	t.Run("projects replayed state", func(t *testing.T) {
		mockStore := mocks.NewMockEventStore(t)
		mockRepo := mocks.NewMockOrderRepository(t)

		mockStore.EXPECT().Load(mock.Anything, orderID).
			Return(canceledHistory(t, orderID), nil).Once()
		mockRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(order *domain.Order) bool {
				return order.ID == orderID && order.Status == domain.StatusCanceled
			})).
			Return(nil).Once()

		useCase := NewProjectOrder(mockStore, mockRepo)

		err := useCase.Execute(context.Background(), orderID)
		require.NoError(t, err)
	})

	t.Run("empty stream", func(t *testing.T) {
		mockStore := mocks.NewMockEventStore(t)
		mockRepo := mocks.NewMockOrderRepository(t)

		mockStore.EXPECT().Load(mock.Anything, orderID).Return(nil, nil).Once()

		useCase := NewProjectOrder(mockStore, mockRepo)

		err := useCase.Execute(context.Background(), orderID)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("load failure", func(t *testing.T) {
		mockStore := mocks.NewMockEventStore(t)
		mockRepo := mocks.NewMockOrderRepository(t)

		mockStore.EXPECT().Load(mock.Anything, orderID).
			Return(nil, errors.New("connection refused")).Once()

		useCase := NewProjectOrder(mockStore, mockRepo)

		err := useCase.Execute(context.Background(), orderID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load order stream")
	})

	t.Run("save failure", func(t *testing.T) {
		mockStore := mocks.NewMockEventStore(t)
		mockRepo := mocks.NewMockOrderRepository(t)

		mockStore.EXPECT().Load(mock.Anything, orderID).
			Return(orderHistory(t, orderID), nil).Once()
		mockRepo.EXPECT().Save(mock.Anything, mock.Anything).
			Return(errors.New("database error")).Once()

		useCase := NewProjectOrder(mockStore, mockRepo)

		err := useCase.Execute(context.Background(), orderID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save order projection")
	})
}
