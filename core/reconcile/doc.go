// Package reconcile provides the payment reconciliation engine.
//
// The engine cross-checks locally recorded orders against the payment
// processor's charge ledger for a closed date range and produces a report
// of matches, discrepancies, and orphaned charges. It is strictly
// read-only: it never mutates either data source and only describes what
// it found.
//
// # Architecture
//
// The engine consists of three parts:
//
// 1. Sources: the OrderSource and ChargeLedger interfaces abstract the two
// datasets. Implementations live elsewhere (feature/orders for the gorm
// store, core/ledger for the Stripe client) so the engine can be tested
// with in-memory fakes.
//
// 2. Engine: fetches both datasets concurrently, builds indices keyed by
// payment intent, classifies every order against the ledger, and flags
// unclaimed charges as orphans.
//
// 3. Report: the immutable run summary. A fresh Report is produced on
// every run; given identical source snapshots and a fixed clock, two runs
// yield identical reports.
//
// # Classification
//
// Each order yields exactly one outcome, checked in fixed priority order:
// missing payment intent, no matching charge, amount mismatch, status
// mismatch, or a match. Charges that no order claims are reported as
// orphans. Classification findings are report content, never errors.
//
// # Duplicate intents
//
// When several orders or several charges share one payment intent, the
// earliest CreatedAt wins the pairing (ties broken by smallest ID). Losing
// orders are reported as having no matching charge; losing charges are
// reported as orphans.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(orderStore, ledgerClient)
//	report, err := engine.Reconcile(ctx, dateFrom, dateTo)
package reconcile
