package infrastructure

import (
	"context"

	"github.com/myeshop/order-system/order-service/application"
	"github.com/myeshop/order-system/order-service/domain"
	"github.com/myeshop/order-system/shared/models"
	"github.com/pkg/errors"
)

// LocalOrderCommander dispatches order commands in-process to the
// application layer; the state machine lives in this service, so no
// transport is involved. Commands against an already finalized order
// are absorbed as no-ops, which keeps redelivered saga commands from
// surfacing as failures.
type LocalOrderCommander struct {
	cancelOrder  *application.CancelOrder
	approveOrder *application.ApproveOrder
	rejectOrder  *application.RejectOrder
}

// NewLocalOrderCommander creates the in-process order command dispatcher
func NewLocalOrderCommander(
	cancelOrder *application.CancelOrder,
	approveOrder *application.ApproveOrder,
	rejectOrder *application.RejectOrder,
) *LocalOrderCommander {
	return &LocalOrderCommander{
		cancelOrder:  cancelOrder,
		approveOrder: approveOrder,
		rejectOrder:  rejectOrder,
	}
}

// Cancel issues CancelOrder
func (c *LocalOrderCommander) Cancel(ctx context.Context, orderID models.ID) error {
	return absorbFinalized(c.cancelOrder.Execute(ctx, &application.CancelOrderCommand{OrderID: orderID}))
}

// Approve issues ApproveOrder
func (c *LocalOrderCommander) Approve(ctx context.Context, orderID models.ID) error {
	return absorbFinalized(c.approveOrder.Execute(ctx, &application.ApproveOrderCommand{OrderID: orderID}))
}

// Reject issues RejectOrder
func (c *LocalOrderCommander) Reject(ctx context.Context, orderID models.ID) error {
	return absorbFinalized(c.rejectOrder.Execute(ctx, &application.RejectOrderCommand{OrderID: orderID}))
}

func absorbFinalized(err error) error {
	if errors.Is(err, domain.ErrOrderFinalized) {
		return nil
	}
	return err
}
