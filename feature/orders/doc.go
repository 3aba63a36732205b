// Package orders provides the order record source backed by the order
// database.
//
// The store reads a snapshot of the orders table for a closed date range
// and maps rows to the engine's snapshot type. It returns every order in
// range, including ones recorded without a payment intent, because a
// missing intent is itself a reportable defect. Rows come back ordered by
// created_at then id so reconciliation output is deterministic.
//
// Ownership of the table stays with the order-management side; this
// package never writes.
package orders
