package application

import (
	"context"
	"time"

	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
)

// GetOrderQuery represents the query to fetch an order from the read model
type GetOrderQuery struct {
	OrderID string `json:"order_id"`
}

// GetOrderResponse is the read-model view of an order
type GetOrderResponse struct {
	OrderID       string            `json:"order_id"`
	TotalPrice    models.Money      `json:"total_price"`
	TotalQuantity int               `json:"total_quantity"`
	Status        string            `json:"status"`
	Reason        string            `json:"reason,omitempty"`
	CustomerEmail string            `json:"customer_email"`
	AddressID     string            `json:"address_id"`
	PaymentID     string            `json:"payment_id"`
	CartItems     []CartItemPayload `json:"cart_items"`
	DateCreated   time.Time         `json:"date_created"`
	LastUpdated   time.Time         `json:"last_updated"`
}

// GetOrder use case
type GetOrder struct {
	orderRepository domain.OrderRepository
}

// NewGetOrder creates a new GetOrder use case
func NewGetOrder(orderRepository domain.OrderRepository) *GetOrder {
	return &GetOrder{orderRepository: orderRepository}
}

// Execute fetches the order projection
func (uc *GetOrder) Execute(ctx context.Context, query *GetOrderQuery) (*GetOrderResponse, error) {
	if query.OrderID == "" {
		return nil, errors.New("order ID is required")
	}

	orderID, err := models.NewID(query.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid order ID")
	}

	order, err := uc.orderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	items := make([]CartItemPayload, 0, len(order.CartItems))
	for _, item := range order.CartItems {
		items = append(items, CartItemPayload{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
		})
	}

	return &GetOrderResponse{
		OrderID:       order.ID.String(),
		TotalPrice:    order.TotalPrice,
		TotalQuantity: order.TotalQuantity,
		Status:        string(order.Status),
		Reason:        string(order.Reason),
		CustomerEmail: order.CustomerEmail,
		AddressID:     order.AddressID.String(),
		PaymentID:     order.PaymentID.String(),
		CartItems:     items,
		DateCreated:   order.Timestamps.CreatedAt,
		LastUpdated:   order.Timestamps.UpdatedAt,
	}, nil
}
