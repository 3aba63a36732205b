package reconcile

import "time"

// IssueKind is the fixed taxonomy of reconciliation findings.
type IssueKind string

const (
	// IssueMissingIntent flags an order recorded without a payment intent.
	IssueMissingIntent IssueKind = "missing_intent"
	// IssueNoMatchingCharge flags an order whose intent has no ledger charge.
	IssueNoMatchingCharge IssueKind = "no_matching_charge"
	// IssueAmountMismatch flags an order/charge pair with differing amounts.
	IssueAmountMismatch IssueKind = "amount_mismatch"
	// IssueStatusMismatch flags an order whose status disagrees with the charge.
	IssueStatusMismatch IssueKind = "status_mismatch"
	// IssueOrphanedCharge flags a ledger charge no local order claims.
	IssueOrphanedCharge IssueKind = "orphaned_charge"
)

// OrphanOrderID is the sentinel order ID used for ledger-only findings.
const OrphanOrderID = "N/A"

// Mismatch is a single reconciliation finding. Order-side findings carry
// the order fields; orphan findings use the OrphanOrderID sentinel and
// populate the stripe fields instead.
type Mismatch struct {
	// OrderID is the local order, or OrphanOrderID for ledger-only findings.
	OrderID string `json:"orderId"`

	// PaymentIntentID is the shared identifier, when known.
	PaymentIntentID *string `json:"paymentIntentId,omitempty"`

	// OrderStatus is the locally recorded payment status.
	OrderStatus string `json:"orderStatus"`

	// OrderAmount is the order total in minor units; zero for orphans.
	OrderAmount int64 `json:"orderAmount"`

	// StripeStatus is the ledger charge status, when a charge was involved.
	StripeStatus *string `json:"stripeStatus,omitempty"`

	// StripeAmount is the ledger charge amount, when a charge was involved.
	StripeAmount *int64 `json:"stripeAmount,omitempty"`

	// Kind identifies the finding within the fixed taxonomy.
	Kind IssueKind `json:"kind"`

	// Issue is the human-readable description of the finding.
	Issue string `json:"issue"`
}

// Report is the immutable summary of one reconciliation run.
// Field order is fixed so serialized reports are stable for downstream
// automation.
type Report struct {
	// GeneratedAt is when the report was assembled.
	GeneratedAt time.Time `json:"date"`

	// TotalOrders is the number of orders fetched for the range.
	TotalOrders int `json:"totalOrders"`

	// TotalStripeCharges is the number of ledger charges fetched for the range.
	TotalStripeCharges int `json:"totalStripeCharges"`

	// MatchedPayments counts orders that reconciled cleanly.
	MatchedPayments int `json:"matchedPayments"`

	// Mismatches lists every finding: order-side findings first in source
	// order, then orphaned charges in ledger order.
	Mismatches []Mismatch `json:"mismatches"`
}

// OrderFindings returns the mismatches attributable to a local order.
func (r *Report) OrderFindings() []Mismatch {
	out := make([]Mismatch, 0, len(r.Mismatches))
	for _, m := range r.Mismatches {
		if m.Kind != IssueOrphanedCharge {
			out = append(out, m)
		}
	}
	return out
}

// OrphanFindings returns the orphaned-charge mismatches.
func (r *Report) OrphanFindings() []Mismatch {
	out := make([]Mismatch, 0, len(r.Mismatches))
	for _, m := range r.Mismatches {
		if m.Kind == IssueOrphanedCharge {
			out = append(out, m)
		}
	}
	return out
}
