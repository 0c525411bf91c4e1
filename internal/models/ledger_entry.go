package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents one leg of a posted transaction.
// Exactly one of Debit or Credit is non-zero.
type JournalEntry struct {
	ID             int64           `json:"id"`             // assigned by the store, never reused
	TransactionID  string          `json:"transaction_id"` // shared by all legs submitted together
	Date           time.Time       `json:"date"`           // calendar date, UTC midnight
	Account        string          `json:"account"`        // case-sensitive account key
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Description    string          `json:"description,omitempty"`
	IdempotencyKey string          `json:"-"`
}

// IsDebit reports whether the entry sits on the debit side.
func (e JournalEntry) IsDebit() bool {
	return e.Debit.IsPositive()
}

// Amount returns the non-zero side of the entry.
func (e JournalEntry) Amount() decimal.Decimal {
	if e.IsDebit() {
		return e.Debit
	}
	return e.Credit
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
