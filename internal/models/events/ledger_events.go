package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event type names published alongside each payload.
const (
	TypeTransactionPosted = "transaction_posted"
	TypeEntryDeleted      = "entry_deleted"
	TypeLedgerCleared     = "ledger_cleared"
)

type TransactionPosted struct {
	TransactionID string          `json:"transaction_id"`
	EntryIDs      []int64         `json:"entry_ids"`
	Date          string          `json:"date"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

type EntryDeleted struct {
	EntryID       int64     `json:"entry_id"`
	TransactionID string    `json:"transaction_id"`
	Account       string    `json:"account"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type LedgerCleared struct {
	RemovedEntries int       `json:"removed_entries"`
	OccurredAt     time.Time `json:"occurred_at"`
}
