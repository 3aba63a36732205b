// Package reconciliation exposes reconciliation runs to callers.
//
// It wraps the core engine with the collaborator concerns the engine
// itself stays free of: run timeouts, structured run logging, deduping of
// concurrent identical requests (singleflight), and the HTTP surface that
// parses textual dates and serializes reports.
//
// # Endpoint
//
//	GET /reconcile?from=YYYY-MM-DD&to=YYYY-MM-DD
//
// Both parameters are optional; the range defaults to the last 24 hours.
// Responses follow the {"success": true, "report": ...} envelope, with
// the error taxonomy mapped to 400 (invalid range), 502 (source
// unavailable), and 504 (timeout).
package reconciliation
