package saga

import (
	"context"
	"time"

	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// InventoryGateway dispatches inventory commands. Reserve blocks until
// the inventory service answers; Rollback is fire-and-forget.
type InventoryGateway interface {
	Reserve(ctx context.Context, cmd contracts.ReserveProduct) error
	Rollback(ctx context.Context, cmd contracts.RollbackProduct) error
}

// PaymentGateway dispatches payment commands and queries
type PaymentGateway interface {
	FetchDetail(ctx context.Context, query contracts.FetchPaymentDetail) (*contracts.PaymentDetail, error)
	Process(ctx context.Context, cmd contracts.ProcessPayment) (*contracts.PaymentResult, error)
}

// OrderCommander issues commands back to the order state machine.
// All three are fire-and-forget from the saga's point of view.
type OrderCommander interface {
	Cancel(ctx context.Context, orderID models.ID) error
	Approve(ctx context.Context, orderID models.ID) error
	Reject(ctx context.Context, orderID models.ID) error
}

// OrderSaga orchestrates one order's fulfillment: reserve inventory item
// by item, fetch the payment instrument, charge it, then wait for the
// terminal order event. Any step failure compensates the reservations
// made so far and drives the order to a terminal status. Instances for
// distinct orders are independent; within an instance processing is
// strictly sequential.
type OrderSaga struct {
	store     Store
	inventory InventoryGateway
	payments  PaymentGateway
	orders    OrderCommander
	logger    *zap.Logger

	reserveTimeout time.Duration
	detailTimeout  time.Duration
	processTimeout time.Duration
}

// Option configures an OrderSaga
type Option func(*OrderSaga)

// WithReserveTimeout bounds each per-item reservation call
func WithReserveTimeout(d time.Duration) Option {
	return func(s *OrderSaga) {
		s.reserveTimeout = d
	}
}

// WithDetailTimeout bounds the payment-detail query
func WithDetailTimeout(d time.Duration) Option {
	return func(s *OrderSaga) {
		s.detailTimeout = d
	}
}

// WithProcessTimeout bounds the payment-processing call
func WithProcessTimeout(d time.Duration) Option {
	return func(s *OrderSaga) {
		s.processTimeout = d
	}
}

// NewOrderSaga creates the fulfillment orchestrator
func NewOrderSaga(
	store Store,
	inventory InventoryGateway,
	payments PaymentGateway,
	orders OrderCommander,
	logger *zap.Logger,
	opts ...Option,
) *OrderSaga {
	s := &OrderSaga{
		store:     store,
		inventory: inventory,
		payments:  payments,
		orders:    orders,
		logger:    logger,

		reserveTimeout: 5 * time.Second,
		detailTimeout:  5 * time.Second,
		processTimeout: 10 * time.Second,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandlerID implements events.EventHandler
func (s *OrderSaga) HandlerID() string {
	return "order-fulfillment-saga"
}

// Handle routes an inbound event to the instance correlated by order ID
func (s *OrderSaga) Handle(ctx context.Context, event *events.Event) error {
	switch event.EventType {
	case events.OrderCreatedEvent:
		return s.onOrderCreated(ctx, event)
	case events.PaymentProcessedEvent:
		return s.onPaymentProcessed(ctx, event)
	case events.OrderApprovedEvent, events.OrderRejectedEvent:
		return s.onOrderFinalized(ctx, event)
	default:
		return nil
	}
}

// onOrderCreated starts the instance and runs the reservation and
// payment steps to the point where the saga has to wait for the
// payment-processed event.
func (s *OrderSaga) onOrderCreated(ctx context.Context, event *events.Event) error {
	var order domain.OrderCreatedData
	if err := event.UnmarshalPayload(&order); err != nil {
		return errors.Wrap(err, "failed to decode order created payload")
	}

	existing, err := s.store.Find(ctx, order.OrderID)
	if err != nil {
		return errors.Wrap(err, "failed to look up saga instance")
	}
	if existing != nil {
		// Redelivered order.created; the live instance already owns this order.
		s.logger.Info("duplicate order.created dropped",
			zap.String("order_id", order.OrderID.String()))
		return nil
	}

	instance := NewInstance(order.OrderID)
	if err := s.store.Save(ctx, instance); err != nil {
		return errors.Wrap(err, "failed to save saga instance")
	}

	s.logger.Info("fulfillment started",
		zap.String("order_id", order.OrderID.String()),
		zap.Int("cart_items", len(order.CartItems)))
	sagaStartedTotal.Inc()

	// Step 1: reserve inventory, one blocking call per cart item. The
	// failing item is never added to Reserved, so compensation covers
	// exactly the items confirmed before it.
	for _, item := range order.CartItems {
		if err := s.reserve(ctx, order.OrderID, item); err != nil {
			s.logger.Warn("reservation failed, canceling order",
				zap.String("order_id", order.OrderID.String()),
				zap.String("product_id", item.ProductID.String()),
				zap.Error(err))
			sagaStepFailuresTotal.WithLabelValues(string(StepReservingInventory)).Inc()

			s.rollbackReservations(ctx, order.OrderID, instance.Reserved)
			if err := s.orders.Cancel(ctx, order.OrderID); err != nil {
				s.logger.Error("cancel order command failed",
					zap.String("order_id", order.OrderID.String()), zap.Error(err))
			}
			return s.end(ctx, instance, "canceled")
		}

		instance.Reserved = append(instance.Reserved, item)
		if err := s.store.Save(ctx, instance); err != nil {
			return errors.Wrap(err, "failed to persist compensation boundary")
		}
	}

	// Step 2: fetch the payment instrument
	instance.Advance(StepFetchingPayment)
	if err := s.store.Save(ctx, instance); err != nil {
		return errors.Wrap(err, "failed to save saga instance")
	}

	detail, err := s.fetchDetail(ctx, order.PaymentID)
	if err != nil || detail == nil {
		s.logger.Warn("payment detail unavailable, rejecting order",
			zap.String("order_id", order.OrderID.String()),
			zap.String("payment_id", order.PaymentID.String()),
			zap.Error(err))
		sagaStepFailuresTotal.WithLabelValues(string(StepFetchingPayment)).Inc()

		s.rejectAndCompensate(ctx, order)
		return nil
	}

	// Step 3: charge the payment, bounded by the processing timeout
	instance.Advance(StepProcessingPayment)
	if err := s.store.Save(ctx, instance); err != nil {
		return errors.Wrap(err, "failed to save saga instance")
	}

	result, err := s.processPayment(ctx, order, detail)
	if err != nil || result == nil {
		s.logger.Warn("payment processing failed, rejecting order",
			zap.String("order_id", order.OrderID.String()),
			zap.Error(err))
		sagaStepFailuresTotal.WithLabelValues(string(StepProcessingPayment)).Inc()

		s.rejectAndCompensate(ctx, order)
		return nil
	}

	// Step 4: wait for the payment-processed event
	instance.Advance(StepAwaitingApproval)
	if err := s.store.Save(ctx, instance); err != nil {
		return errors.Wrap(err, "failed to save saga instance")
	}

	s.logger.Info("payment accepted, awaiting confirmation",
		zap.String("order_id", order.OrderID.String()),
		zap.String("record_id", result.RecordID.String()))
	return nil
}

// onPaymentProcessed approves the order once the charge is confirmed
func (s *OrderSaga) onPaymentProcessed(ctx context.Context, event *events.Event) error {
	var payment domain.PaymentProcessedData
	if err := event.UnmarshalPayload(&payment); err != nil {
		return errors.Wrap(err, "failed to decode payment processed payload")
	}

	instance, err := s.store.Find(ctx, payment.OrderID)
	if err != nil {
		return errors.Wrap(err, "failed to look up saga instance")
	}
	if instance == nil {
		// Instance already ended; stale or duplicate confirmation.
		return nil
	}
	if !instance.Accepts(event.EventType) {
		// With concurrent consumers the confirmation can overtake the
		// instance save that moves it to awaiting approval. The instance
		// is live, so redeliver instead of dropping the approval trigger.
		return errors.Errorf("payment processed for order %s arrived at step %s, redelivering",
			payment.OrderID, instance.Step)
	}

	if err := s.orders.Approve(ctx, payment.OrderID); err != nil {
		s.logger.Error("approve order command failed",
			zap.String("order_id", payment.OrderID.String()), zap.Error(err))
	}
	return nil
}

// onOrderFinalized ends the instance on a terminal order event
func (s *OrderSaga) onOrderFinalized(ctx context.Context, event *events.Event) error {
	orderID := event.AggregateID

	instance, err := s.store.Find(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "failed to look up saga instance")
	}
	if instance == nil || !instance.Accepts(event.EventType) {
		return nil
	}

	outcome := "approved"
	if event.EventType == events.OrderRejectedEvent {
		outcome = "rejected"
	}
	return s.end(ctx, instance, outcome)
}

func (s *OrderSaga) reserve(ctx context.Context, orderID models.ID, item contracts.CartItem) error {
	ctx, cancel := context.WithTimeout(ctx, s.reserveTimeout)
	defer cancel()

	return s.inventory.Reserve(ctx, contracts.ReserveProduct{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		OrderID:   orderID,
	})
}

func (s *OrderSaga) fetchDetail(ctx context.Context, paymentID models.ID) (*contracts.PaymentDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.detailTimeout)
	defer cancel()

	return s.payments.FetchDetail(ctx, contracts.FetchPaymentDetail{PaymentID: paymentID})
}

func (s *OrderSaga) processPayment(ctx context.Context, order domain.OrderCreatedData, detail *contracts.PaymentDetail) (*contracts.PaymentResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.processTimeout)
	defer cancel()

	return s.payments.Process(ctx, contracts.ProcessPayment{
		RecordID:  models.GenerateUUID(),
		OrderID:   order.OrderID,
		PaymentID: order.PaymentID,
		Detail:    detail,
	})
}

// rollbackReservations issues fire-and-forget rollback commands for the
// given items. Rollback failures are logged, not retried.
func (s *OrderSaga) rollbackReservations(ctx context.Context, orderID models.ID, items []contracts.CartItem) {
	for _, item := range items {
		err := s.inventory.Rollback(ctx, contracts.RollbackProduct{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			OrderID:   orderID,
		})
		if err != nil {
			s.logger.Error("rollback command failed",
				zap.String("order_id", orderID.String()),
				zap.String("product_id", item.ProductID.String()),
				zap.Error(err))
		}
	}
}

// rejectAndCompensate handles the payment-branch failures: every cart
// item was reserved by the time step 2 runs, so the full cart rolls
// back, and the order is rejected. The instance stays alive until the
// order.rejected event arrives.
func (s *OrderSaga) rejectAndCompensate(ctx context.Context, order domain.OrderCreatedData) {
	s.rollbackReservations(ctx, order.OrderID, order.CartItems)
	if err := s.orders.Reject(ctx, order.OrderID); err != nil {
		s.logger.Error("reject order command failed",
			zap.String("order_id", order.OrderID.String()), zap.Error(err))
	}
}

// end destroys the instance; the correlation key is released and any
// later event for this order is dropped.
func (s *OrderSaga) end(ctx context.Context, instance *Instance, outcome string) error {
	if err := s.store.Delete(ctx, instance.ID); err != nil {
		return errors.Wrap(err, "failed to delete saga instance")
	}

	s.logger.Info("fulfillment ended",
		zap.String("order_id", instance.ID.String()),
		zap.String("outcome", outcome))
	sagaEndedTotal.WithLabelValues(outcome).Inc()
	return nil
}
