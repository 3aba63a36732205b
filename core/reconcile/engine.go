package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Engine performs reconciliation runs against a pair of sources.
// It holds no state between runs; every run builds fresh indices and
// discards them on completion.
type Engine struct {
	orders OrderSource
	ledger ChargeLedger

	// now is the clock used for the report timestamp. Swappable in tests
	// so identical snapshots yield identical reports.
	now func() time.Time
}

// NewEngine creates an engine over the given sources.
func NewEngine(orders OrderSource, ledger ChargeLedger) *Engine {
	return &Engine{
		orders: orders,
		ledger: ledger,
		now:    time.Now,
	}
}

// Reconcile cross-checks all orders and charges created within
// [dateFrom, dateTo] and returns the assembled report.
//
// The call is read-only and idempotent given stable upstream data. Both
// fetches run concurrently; a failure of either is fatal for the run and
// surfaces as *SourceError, or ErrTimeout if the context deadline expired.
func (e *Engine) Reconcile(ctx context.Context, dateFrom, dateTo time.Time) (*Report, error) {
	if dateFrom.After(dateTo) {
		return nil, fmt.Errorf("%w (from=%s to=%s)", ErrInvalidRange,
			dateFrom.Format(time.RFC3339), dateTo.Format(time.RFC3339))
	}

	orders, charges, err := e.fetchBoth(ctx, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	ordersByIntent := indexOrders(orders)
	chargesByIntent := indexCharges(charges)

	report := &Report{
		GeneratedAt:        e.now().UTC(),
		TotalOrders:        len(orders),
		TotalStripeCharges: len(charges),
		Mismatches:         []Mismatch{},
	}

	// Order-side pass: every order yields a match or exactly one mismatch.
	for _, order := range orders {
		if m, matched := classifyOrder(order, ordersByIntent, chargesByIntent); matched {
			report.MatchedPayments++
		} else {
			report.Mismatches = append(report.Mismatches, m)
		}
	}

	// Orphan pass: charges no order claims, in ledger order. A charge is
	// claimed only if its intent belongs to an order and it won the
	// tie-break for that intent.
	for _, charge := range charges {
		if isClaimed(charge, ordersByIntent, chargesByIntent) {
			continue
		}
		report.Mismatches = append(report.Mismatches, orphanMismatch(charge))
	}

	return report, nil
}

// fetchBoth loads the two datasets concurrently. Neither fetch mutates
// shared state, so no locking beyond the WaitGroup is needed.
func (e *Engine) fetchBoth(ctx context.Context, dateFrom, dateTo time.Time) ([]Order, []Charge, error) {
	var (
		orders     []Order
		charges    []Charge
		ordersErr  error
		chargesErr error
		wg         sync.WaitGroup
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		orders, ordersErr = e.orders.ListOrdersInRange(ctx, dateFrom, dateTo)
	}()

	go func() {
		defer wg.Done()
		charges, chargesErr = e.ledger.ListCharges(ctx, dateFrom, dateTo)
	}()

	wg.Wait()

	if ordersErr != nil {
		return nil, nil, classifyFetchError("orders", ordersErr)
	}
	if chargesErr != nil {
		return nil, nil, classifyFetchError("ledger", chargesErr)
	}

	return orders, charges, nil
}

// classifyOrder applies the fixed priority order: missing intent, no
// matching charge, amount mismatch, status mismatch, match. It returns
// the mismatch and false, or a zero Mismatch and true on a clean match.
func classifyOrder(order Order, ordersByIntent map[string]Order, chargesByIntent map[string]Charge) (Mismatch, bool) {
	intent := intentOf(order.PaymentIntentID)
	if intent == "" {
		return Mismatch{
			OrderID:     order.ID,
			OrderStatus: string(order.PaymentStatus),
			OrderAmount: order.AmountTotal,
			Kind:        IssueMissingIntent,
			Issue:       "No payment intent ID",
		}, false
	}

	// A duplicate order that lost the tie-break does not get to claim the
	// charge; it reports as unmatched.
	charge, chargeOK := chargesByIntent[intent]
	if !chargeOK || ordersByIntent[intent].ID != order.ID {
		return Mismatch{
			OrderID:         order.ID,
			PaymentIntentID: order.PaymentIntentID,
			OrderStatus:     string(order.PaymentStatus),
			OrderAmount:     order.AmountTotal,
			Kind:            IssueNoMatchingCharge,
			Issue:           "No matching Stripe charge found",
		}, false
	}

	stripeStatus := string(charge.Status)

	if order.AmountTotal != charge.Amount {
		return Mismatch{
			OrderID:         order.ID,
			PaymentIntentID: order.PaymentIntentID,
			OrderStatus:     string(order.PaymentStatus),
			OrderAmount:     order.AmountTotal,
			StripeStatus:    &stripeStatus,
			StripeAmount:    &charge.Amount,
			Kind:            IssueAmountMismatch,
			Issue:           fmt.Sprintf("Amount mismatch: order %d vs charge %d", order.AmountTotal, charge.Amount),
		}, false
	}

	if expected := expectedOrderStatus(charge); order.PaymentStatus != expected {
		return Mismatch{
			OrderID:         order.ID,
			PaymentIntentID: order.PaymentIntentID,
			OrderStatus:     string(order.PaymentStatus),
			OrderAmount:     order.AmountTotal,
			StripeStatus:    &stripeStatus,
			StripeAmount:    &charge.Amount,
			Kind:            IssueStatusMismatch,
			Issue:           fmt.Sprintf("Status mismatch: order %s vs expected %s", order.PaymentStatus, expected),
		}, false
	}

	return Mismatch{}, true
}

// orphanMismatch builds the finding for a charge no local order claims.
func orphanMismatch(charge Charge) Mismatch {
	stripeStatus := string(charge.Status)
	return Mismatch{
		OrderID:         OrphanOrderID,
		PaymentIntentID: charge.PaymentIntentID,
		OrderStatus:     OrphanOrderID,
		OrderAmount:     0,
		StripeStatus:    &stripeStatus,
		StripeAmount:    &charge.Amount,
		Kind:            IssueOrphanedCharge,
		Issue:           "Charge without matching order",
	}
}

// isClaimed reports whether a charge is paired with a local order: its
// intent must belong to an order and the charge must have won the
// tie-break for that intent.
func isClaimed(charge Charge, ordersByIntent map[string]Order, chargesByIntent map[string]Charge) bool {
	intent := intentOf(charge.PaymentIntentID)
	if intent == "" {
		return false
	}
	if _, ok := ordersByIntent[intent]; !ok {
		return false
	}
	return chargesByIntent[intent].ID == charge.ID
}

// indexOrders maps payment intents to orders. For duplicate intents the
// earliest CreatedAt wins, ties broken by lexicographically smallest ID.
func indexOrders(orders []Order) map[string]Order {
	idx := make(map[string]Order, len(orders))
	for _, o := range orders {
		intent := intentOf(o.PaymentIntentID)
		if intent == "" {
			continue
		}
		cur, ok := idx[intent]
		if !ok || createdBefore(o.CreatedAt, o.ID, cur.CreatedAt, cur.ID) {
			idx[intent] = o
		}
	}
	return idx
}

// indexCharges maps payment intents to charges, same tie-break as orders.
func indexCharges(charges []Charge) map[string]Charge {
	idx := make(map[string]Charge, len(charges))
	for _, c := range charges {
		intent := intentOf(c.PaymentIntentID)
		if intent == "" {
			continue
		}
		cur, ok := idx[intent]
		if !ok || createdBefore(c.Created, c.ID, cur.Created, cur.ID) {
			idx[intent] = c
		}
	}
	return idx
}

func createdBefore(aTime time.Time, aID string, bTime time.Time, bID string) bool {
	if !aTime.Equal(bTime) {
		return aTime.Before(bTime)
	}
	return aID < bID
}

func intentOf(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}
