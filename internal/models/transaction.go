package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Leg is one side of a submitted transaction before it is posted.
type Leg struct {
	Account string
	Amount  decimal.Decimal
}

// TransactionRequest represents an intent to post a balanced set of legs.
// All legs share the same Date and Description.
type TransactionRequest struct {
	IdempotencyKey string
	Date           time.Time
	Description    string
	Debits         []Leg
	Credits        []Leg
}

// PostedTransaction is the outcome of an accepted TransactionRequest.
type PostedTransaction struct {
	TransactionID string  `json:"transaction_id"`
	EntryIDs      []int64 `json:"entry_ids"`
	Replayed      bool    `json:"replayed"`
}
