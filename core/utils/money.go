package utils

import "github.com/shopspring/decimal"

// minorUnitsPerMajor is the scale for two-decimal currencies, which is
// all the processor boundary currently deals in.
var minorUnitsPerMajor = decimal.NewFromInt(100)

// FormatMinorUnits renders an integer minor-currency amount as a decimal
// string for display, e.g. 1050 -> "10.50".
func FormatMinorUnits(amount int64) string {
	return decimal.NewFromInt(amount).Div(minorUnitsPerMajor).StringFixed(2)
}
