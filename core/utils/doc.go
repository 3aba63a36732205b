// Package utils provides common utility functions for the reconciliation
// service.
//
// Monetary amounts travel through the system as integer minor-currency
// units (cents); the helpers here exist only at the display boundary and
// never feed back into comparisons, which stay exact integer equality.
package utils
