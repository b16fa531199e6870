package domain

import (
	"time"

	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/models"
)

// Event Data Structures

// OrderCreatedData carries the full order snapshot so downstream
// consumers never need to query the write side.
type OrderCreatedData struct {
	OrderID       models.ID            `json:"order_id"`
	TotalPrice    models.Money         `json:"total_price"`
	TotalQuantity int                  `json:"total_quantity"`
	Status        Status               `json:"status"`
	CustomerEmail string               `json:"customer_email"`
	AddressID     models.ID            `json:"address_id"`
	PaymentID     models.ID            `json:"payment_id"`
	CartItems     []contracts.CartItem `json:"cart_items"`
	DateCreated   time.Time            `json:"date_created"`
	LastUpdated   time.Time            `json:"last_updated"`
}

type OrderCanceledData struct {
	OrderID models.ID `json:"order_id"`
	Status  Status    `json:"status"`
	Reason  Reason    `json:"reason"`
}

type OrderApprovedData struct {
	OrderID models.ID `json:"order_id"`
	Status  Status    `json:"status"`
}

type OrderRejectedData struct {
	OrderID models.ID `json:"order_id"`
	Status  Status    `json:"status"`
	Reason  Reason    `json:"reason"`
}

// PaymentProcessedData is published by the payment collaborator once a
// charge clears; the saga correlates it by order ID.
type PaymentProcessedData struct {
	OrderID   models.ID `json:"order_id"`
	PaymentID models.ID `json:"payment_id"`
	RecordID  models.ID `json:"record_id"`
}
