package contracts

import (
	"github.com/myeshop/order-system/shared/models"
)

// CartItem is an immutable product/quantity pair inside an order.
// Items are unique by product ID within a cart.
type CartItem struct {
	ProductID models.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// ReserveProduct asks the inventory service to put a hold on stock
// for one cart item of an order. Blocking: the caller branches on the result.
type ReserveProduct struct {
	ProductID models.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	OrderID   models.ID `json:"order_id"`
}

// RollbackProduct releases a previously confirmed reservation.
// Fire-and-forget compensation.
type RollbackProduct struct {
	ProductID models.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	OrderID   models.ID `json:"order_id"`
}

// PaymentDetail is the stored payment instrument returned by the
// payment service's detail query.
type PaymentDetail struct {
	ID         models.ID `json:"id"`
	Name       string    `json:"name"`
	CardNumber string    `json:"card_number"`
	ValidUntil string    `json:"valid_until"`
}

// FetchPaymentDetail queries the payment service for the instrument
// referenced by an order.
type FetchPaymentDetail struct {
	PaymentID models.ID `json:"payment_id"`
}

// ProcessPayment asks the payment service to charge an order.
// RecordID is a freshly generated transaction-record identifier so the
// payment service can deduplicate redelivered charges.
type ProcessPayment struct {
	RecordID  models.ID      `json:"record_id"`
	OrderID   models.ID      `json:"order_id"`
	PaymentID models.ID      `json:"payment_id"`
	Detail    *PaymentDetail `json:"detail"`
}

// PaymentResult is the token returned by a completed charge.
type PaymentResult struct {
	RecordID models.ID `json:"record_id"`
	Token    string    `json:"token"`
}
