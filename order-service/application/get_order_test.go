package application

import (
	"context"
	"testing"
	"time"

	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/order-service/mocks"
	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetOrder_Execute(t *testing.T) {
	validOrderID := "550e8400-e29b-41d4-a716-446655440010"
	testTime := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	testOrder := &domain.Order{
		ID:            models.ID(validOrderID),
		TotalPrice:    models.NewMoney(12500, "USD"),
		TotalQuantity: 3,
		Status:        domain.StatusRejected,
		Reason:        domain.ReasonPaymentFailed,
		CustomerEmail: "buyer@example.com",
		AddressID:     models.ID("550e8400-e29b-41d4-a716-446655440030"),
		PaymentID:     models.ID("550e8400-e29b-41d4-a716-446655440020"),
		CartItems: []contracts.CartItem{
			{ProductID: models.ID("550e8400-e29b-41d4-a716-446655440001"), Quantity: 2},
		},
		Timestamps: models.Timestamps{
			CreatedAt: testTime,
			UpdatedAt: testTime.Add(time.Minute),
		},
	}

	tests := []struct {
		name          string
		query         *GetOrderQuery
		setupMocks    func(*mocks.MockOrderRepository)
		expectedError string
		check         func(*testing.T, *GetOrderResponse)
	}{
		{
			name:  "successful retrieval",
			query: &GetOrderQuery{OrderID: validOrderID},
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.EXPECT().FindByID(mock.Anything, models.ID(validOrderID)).
					Return(testOrder, nil).Once()
			},
			check: func(t *testing.T, result *GetOrderResponse) {
				assert.Equal(t, validOrderID, result.OrderID)
				assert.Equal(t, "rejected", result.Status)
				assert.Equal(t, "payment_failed", result.Reason)
				assert.Equal(t, "buyer@example.com", result.CustomerEmail)
				assert.Len(t, result.CartItems, 1)
				assert.Equal(t, testTime, result.DateCreated)
				assert.Equal(t, testTime.Add(time.Minute), result.LastUpdated)
			},
		},
		{
			name:          "empty order ID",
			query:         &GetOrderQuery{},
			setupMocks:    func(*mocks.MockOrderRepository) {},
			expectedError: "order ID is required",
		},
		{
			name:          "invalid order ID format",
			query:         &GetOrderQuery{OrderID: "not-a-uuid"},
			setupMocks:    func(*mocks.MockOrderRepository) {},
			expectedError: "invalid order ID",
		},
		{
			name:  "order not found",
			query: &GetOrderQuery{OrderID: validOrderID},
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.EXPECT().FindByID(mock.Anything, models.ID(validOrderID)).
					Return(nil, nil).Once()
			},
			expectedError: "order not found",
		},
		{
			name:  "repository error",
			query: &GetOrderQuery{OrderID: validOrderID},
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.EXPECT().FindByID(mock.Anything, models.ID(validOrderID)).
					Return(nil, errors.New("database error")).Once()
			},
			expectedError: "failed to find order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockOrderRepository(t)
			tt.setupMocks(mockRepo)

			useCase := NewGetOrder(mockRepo)

			result, err := useCase.Execute(context.Background(), tt.query)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, result)
			tt.check(t, result)
		})
	}
}
