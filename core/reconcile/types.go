package reconcile

import (
	"context"
	"time"
)

// PaymentStatus is the closed set of payment states an order can be in.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusSucceeded PaymentStatus = "succeeded"
	StatusFailed    PaymentStatus = "failed"
	StatusRefunded  PaymentStatus = "refunded"
)

// Order is a snapshot of a locally recorded sale. The engine only reads
// these; ownership stays with the order-management side.
type Order struct {
	// ID is the unique order identifier.
	ID string

	// PaymentIntentID links the order to its processor charge.
	// Nil means the order was recorded without one, which is itself
	// a reportable defect.
	PaymentIntentID *string

	// PaymentStatus is the locally recorded payment state.
	PaymentStatus PaymentStatus

	// AmountTotal is the order total in minor currency units (cents).
	AmountTotal int64

	// CreatedAt is when the order was recorded.
	CreatedAt time.Time
}

// ChargeStatus is the processor-defined state of a charge.
type ChargeStatus string

const (
	ChargeSucceeded ChargeStatus = "succeeded"
	ChargePending   ChargeStatus = "pending"
	ChargeFailed    ChargeStatus = "failed"
)

// Charge is a snapshot of a processor-side charge. Immutable from this
// system's perspective.
type Charge struct {
	// ID is the processor's charge identifier.
	ID string

	// PaymentIntentID links the charge back to a local order, if any.
	PaymentIntentID *string

	// Status is the processor-reported charge state.
	Status ChargeStatus

	// Refunded indicates the charge has been refunded. A refunded charge
	// still carries its original Status.
	Refunded bool

	// Amount is the charged amount in minor currency units (cents).
	Amount int64

	// Created is the processor-side creation time.
	Created time.Time
}

// OrderSource supplies the locally stored orders for a closed interval.
// Implementations must return all orders in range, including ones without
// a payment intent, in a stable iteration order.
type OrderSource interface {
	ListOrdersInRange(ctx context.Context, dateFrom, dateTo time.Time) ([]Order, error)
}

// ChargeLedger supplies the processor's charges for a closed interval.
// Implementations must exhaust pagination; returning only the first page
// silently drops charges and corrupts the report totals.
type ChargeLedger interface {
	ListCharges(ctx context.Context, dateFrom, dateTo time.Time) ([]Charge, error)
}

// expectedOrderStatus maps a charge's processor state to the payment
// status the local order should be in. Refunds win over the raw status.
func expectedOrderStatus(ch Charge) PaymentStatus {
	switch {
	case ch.Refunded:
		return StatusRefunded
	case ch.Status == ChargeSucceeded:
		return StatusSucceeded
	default:
		return StatusFailed
	}
}
