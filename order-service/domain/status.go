package domain

// Status represents the lifecycle status of an order
type Status string

const (
	StatusCreated  Status = "created"
	StatusCanceled Status = "canceled"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether no further transition is allowed from s.
// Every status except created is terminal.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCanceled, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Reason is the machine-readable explanation attached to a terminal
// status, kept separate from the status code itself.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonStockUnavailable Reason = "stock_unavailable"
	ReasonPaymentFailed    Reason = "payment_failed"
)
