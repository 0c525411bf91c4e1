package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountSummary is the per-account reduction of the ledger.
// Net follows the debit-positive convention: Debit - Credit.
type AccountSummary struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Net     decimal.Decimal `json:"net"`
}

// DateTotal sums the debit and credit legs booked on one calendar date.
type DateTotal struct {
	Date   time.Time       `json:"date"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}
