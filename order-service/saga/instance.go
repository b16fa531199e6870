package saga

import (
	"context"

	"github.com/myeshop/order-system/shared/contracts"
	"github.com/myeshop/order-system/shared/events"
	"github.com/myeshop/order-system/shared/models"
)

// Step is the persisted position of a saga instance in the
// fulfillment protocol.
type Step string

const (
	StepReservingInventory Step = "reserving_inventory"
	StepFetchingPayment    Step = "fetching_payment_detail"
	StepProcessingPayment  Step = "processing_payment"
	StepAwaitingApproval   Step = "awaiting_approval"
)

// Instance is one order's fulfillment attempt. Its ID equals the order
// ID and is the correlation key for every event it observes. Reserved
// holds the inventory reservations confirmed so far and is the
// compensation boundary on failure.
type Instance struct {
	ID         models.ID            `json:"id"`
	Step       Step                 `json:"step"`
	Reserved   []contracts.CartItem `json:"reserved"`
	Timestamps models.Timestamps    `json:"timestamps"`
}

// NewInstance starts a fulfillment attempt for an order
func NewInstance(orderID models.ID) *Instance {
	return &Instance{
		ID:         orderID,
		Step:       StepReservingInventory,
		Timestamps: models.NewTimestamps(),
	}
}

// Advance moves the instance to the next protocol step
func (i *Instance) Advance(step Step) {
	i.Step = step
	i.Timestamps = i.Timestamps.Update()
}

// accepted is the (step, incoming event) table. An event delivered to an
// instance whose step does not list it is either stale or has overtaken
// the instance save; callers drop the former and redeliver the latter.
var accepted = map[Step]map[string]bool{
	StepFetchingPayment: {
		events.OrderRejectedEvent: true,
	},
	StepProcessingPayment: {
		events.OrderRejectedEvent: true,
	},
	StepAwaitingApproval: {
		events.PaymentProcessedEvent: true,
		events.OrderApprovedEvent:    true,
		events.OrderRejectedEvent:    true,
	},
}

// Accepts reports whether the instance handles eventType in its current step
func (i *Instance) Accepts(eventType string) bool {
	return accepted[i.Step][eventType]
}

// Store persists saga instances keyed by correlation ID.
// Find returns (nil, nil) when no live instance exists.
type Store interface {
	Save(ctx context.Context, instance *Instance) error
	Find(ctx context.Context, id models.ID) (*Instance, error)
	Delete(ctx context.Context, id models.ID) error
}
