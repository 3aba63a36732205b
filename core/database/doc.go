// Package database handles the connection to the order database.
//
// The reconciliation engine only ever reads from this database; the
// orders table is owned and written by the order-management side. The
// connector applies conservative pool limits and connection timeouts and
// verifies the connection with a ping before handing it out.
package database
