package domain

// OrderStatus stored order status code. The set of values is closed.
type OrderStatus int16

const (
	OrderStatusPending   OrderStatus = 1
	OrderStatusActive    OrderStatus = 2
	OrderStatusCancelled OrderStatus = 3
	OrderStatusPartial   OrderStatus = 4
)

// DueStatuses statuses that carry an outstanding balance.
var DueStatuses = []OrderStatus{OrderStatusPending, OrderStatusPartial} //nolint:gochecknoglobals

type PaymentState string

const (
	PaymentStatePending PaymentState = "pending"
	PaymentStatePartial PaymentState = "partial"
	PaymentStatePaid    PaymentState = "paid"
)

// Valid reports whether s belongs to the order status enumeration.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusActive, OrderStatusCancelled, OrderStatusPartial:
		return true
	default:
		return false
	}
}

// PaymentState maps the stored code to its payment semantics. Every code other than
// pending and partial counts as paid.
func (s OrderStatus) PaymentState() PaymentState {
	switch s {
	case OrderStatusPending:
		return PaymentStatePending
	case OrderStatusPartial:
		return PaymentStatePartial
	default:
		return PaymentStatePaid
	}
}

// HasDues reports whether orders with this status belong to dues views.
func (s OrderStatus) HasDues() bool {
	return s.PaymentState() != PaymentStatePaid
}

// Label human-readable status for dues line items.
func (s OrderStatus) Label() string {
	switch s.PaymentState() {
	case PaymentStatePending:
		return "Pending Payment"
	case PaymentStatePartial:
		return "Partial Payment"
	default:
		return "Paid"
	}
}
