package memory

import (
	"slices" // generic slice helpers for lookup and deletion
	"sync"   // Mutex serialising every read and write

	interfaces "github.com/sheikh-saqib/ledger-reporting/internal/interfaces" // interface LedgerStore
	"github.com/sheikh-saqib/ledger-reporting/internal/models"                // domain models: JournalEntry
)

// MemoryLedgerStore is an in-memory implementation of interfaces.LedgerStore.
// It keeps entries in insertion order and is safe for concurrent use.
type MemoryLedgerStore struct {
	mu      sync.Mutex            // protects entries and lastID
	entries []models.JournalEntry // insertion order
	lastID  int64                 // highest id ever issued
}

// NewMemoryLedgerStore creates and returns a new MemoryLedgerStore instance
func NewMemoryLedgerStore() *MemoryLedgerStore {
	return &MemoryLedgerStore{
		entries: make([]models.JournalEntry, 0),
	}
}

// Append stores all entries under one lock so no reader observes a partial group.
func (m *MemoryLedgerStore) Append(entries ...models.JournalEntry) []models.JournalEntry {
	m.mu.Lock()         // lock the mutex so the whole group lands together
	defer m.mu.Unlock() // unlock automatically when function exits

	stored := make([]models.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		m.lastID++                           // ids only ever grow, even across removals
		entry.ID = m.lastID                  // entry is a copy, the caller's slice is untouched
		m.entries = append(m.entries, entry) // keep insertion order
		stored = append(stored, entry)
	}
	return stored // stored copies carry the assigned ids
}

// Get returns the live entry with the given id.
func (m *MemoryLedgerStore) Get(id int64) (models.JournalEntry, bool) {
	m.mu.Lock()         // lock to prevent concurrent modification while reading
	defer m.mu.Unlock() // unlock automatically at the end

	if idx := m.indexOf(id); idx >= 0 {
		return m.entries[idx], true
	}
	return models.JournalEntry{}, false
}

// Remove deletes a single entry. The id is not handed out again.
func (m *MemoryLedgerStore) Remove(id int64) bool {
	m.mu.Lock()         // lock the mutex to prevent concurrent writes
	defer m.mu.Unlock() // unlock automatically when function exits

	idx := m.indexOf(id)
	if idx < 0 {
		return false // unknown or already removed
	}
	m.entries = slices.Delete(m.entries, idx, idx+1) // lastID stays, so the id is retired
	return true
}

// Clear drops every entry and returns how many were removed.
func (m *MemoryLedgerStore) Clear() int {
	m.mu.Lock()         // lock the mutex to prevent concurrent writes
	defer m.mu.Unlock() // unlock automatically when function exits

	n := len(m.entries)
	m.entries = make([]models.JournalEntry, 0) // fresh slice; snapshots handed out earlier keep their data
	return n
}

// All returns a copy of all ledger entries so callers can't modify internal state.
func (m *MemoryLedgerStore) All() []models.JournalEntry {
	m.mu.Lock()         // lock to prevent concurrent modification while reading
	defer m.mu.Unlock() // unlock automatically at the end

	// create a new slice to copy entries
	copied := make([]models.JournalEntry, len(m.entries))
	copy(copied, m.entries) // point-in-time snapshot
	return copied
}

// Restore replaces the contents with replayed entries.
func (m *MemoryLedgerStore) Restore(entries []models.JournalEntry, lastID int64) {
	m.mu.Lock()         // lock the mutex to prevent concurrent writes
	defer m.mu.Unlock() // unlock automatically when function exits

	m.entries = make([]models.JournalEntry, len(entries))
	copy(m.entries, entries) // the journal's slice is not retained
	m.lastID = lastID
	for _, e := range entries {
		if e.ID > m.lastID {
			m.lastID = e.ID // never reissue an id seen in the replay
		}
	}
}

// indexOf must be called with mu held.
func (m *MemoryLedgerStore) indexOf(id int64) int {
	return slices.IndexFunc(m.entries, func(e models.JournalEntry) bool { return e.ID == id })
}

// Compile-time check: ensure MemoryLedgerStore implements LedgerStore interface
var _ interfaces.LedgerStore = (*MemoryLedgerStore)(nil)
