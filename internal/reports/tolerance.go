// Package reports derives financial statements from aggregated account summaries.
//
// Every builder is a pure function of its input. Builders return ok == false
// when the ledger holds no entries; that is a normal state, not an error.
package reports

import "github.com/shopspring/decimal"

// Tolerance is the largest absolute difference at which two monetary totals
// still count as equal.
var Tolerance = decimal.New(1, -2)

// WithinTolerance reports whether a and b differ by at most Tolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}
