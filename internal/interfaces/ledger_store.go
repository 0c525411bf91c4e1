package interfaces

import (
	"context"

	"github.com/sheikh-saqib/ledger-reporting/internal/models"
)

// LedgerStore holds the ordered collection of journal entries.
type LedgerStore interface {
	// Append assigns ids to entries and stores them as one unit, returning the stored copies.
	Append(entries ...models.JournalEntry) []models.JournalEntry
	Get(id int64) (models.JournalEntry, bool)
	Remove(id int64) bool
	Clear() int
	// All returns the entries in insertion order.
	All() []models.JournalEntry
	// Restore replaces the contents with replayed entries; ids issued later start after lastID.
	Restore(entries []models.JournalEntry, lastID int64)
}

// Journal is an append-only durable record of ledger writes.
type Journal interface {
	AppendEntries(ctx context.Context, entries []models.JournalEntry) error
	AppendTombstone(ctx context.Context, id int64) error
	AppendClear(ctx context.Context) error
	// Replay returns the live entries in insertion order and the highest id ever issued.
	Replay(ctx context.Context) ([]models.JournalEntry, int64, error)
}
