package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/ledger-reporting/internal/aggregate"
	"github.com/sheikh-saqib/ledger-reporting/internal/classifier"
	interfaces "github.com/sheikh-saqib/ledger-reporting/internal/interfaces"
	"github.com/sheikh-saqib/ledger-reporting/internal/models"
	"github.com/sheikh-saqib/ledger-reporting/internal/models/events"
	"github.com/sheikh-saqib/ledger-reporting/internal/reports"
)

// publishTimeout bounds how long a write waits on the event publisher.
const publishTimeout = 3 * time.Second

// Ledger owns one store of journal entries and derives reports from it.
//
// Writes and snapshots are serialised by a single lock, so a snapshot never
// sees part of a transaction. Reports are computed on the snapshot copy
// without holding the lock.
type Ledger struct {
	id         uuid.UUID
	store      interfaces.LedgerStore
	classifier classifier.Classifier
	journal    interfaces.Journal        // optional durable record
	publisher  interfaces.EventPublisher // optional
	logger     *slog.Logger
	now        func() time.Time

	mu          sync.Mutex
	idempotency map[string]models.PostedTransaction
	version     atomic.Uint64
}

// NewLedger builds a Ledger over store. A nil classifier leaves every
// account unclassified.
func NewLedger(store interfaces.LedgerStore, c classifier.Classifier) *Ledger {
	return &Ledger{
		id:          uuid.New(),
		store:       store,
		classifier:  c,
		logger:      slog.Default(),
		now:         time.Now,
		idempotency: make(map[string]models.PostedTransaction),
	}
}

// WithJournal records every write durably before it becomes visible.
func (l *Ledger) WithJournal(j interfaces.Journal) {
	l.journal = j
}

// WithPublisher sends ledger events after each committed write.
func (l *Ledger) WithPublisher(p interfaces.EventPublisher) {
	l.publisher = p
}

func (l *Ledger) WithLogger(logger *slog.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

func (l *Ledger) WithNow(now func() time.Time) {
	if now != nil {
		l.now = now
	}
}

// ID identifies this ledger instance.
func (l *Ledger) ID() uuid.UUID {
	return l.id
}

// Version increases on every committed write.
func (l *Ledger) Version() uint64 {
	return l.version.Load()
}

// Restore rebuilds the store from the journal. It is a no-op without one.
func (l *Ledger) Restore(ctx context.Context) error {
	if l.journal == nil {
		return nil
	}
	entries, lastID, err := l.journal.Replay(ctx)
	if err != nil {
		return fmt.Errorf("replay journal: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.store.Restore(entries, lastID)
	l.idempotency = make(map[string]models.PostedTransaction)
	for _, e := range entries {
		if e.IdempotencyKey == "" {
			continue
		}
		posted := l.idempotency[e.IdempotencyKey]
		posted.TransactionID = e.TransactionID
		posted.EntryIDs = append(posted.EntryIDs, e.ID)
		l.idempotency[e.IdempotencyKey] = posted
	}
	l.version.Add(1)
	l.logger.Info("ledger restored", slog.Int("entries", len(entries)), slog.Int64("last_id", lastID))
	return nil
}

// SubmitTransaction validates req and appends all of its legs as one unit.
// A request whose idempotency key was already accepted returns the original
// result with Replayed set and writes nothing.
func (l *Ledger) SubmitTransaction(ctx context.Context, req models.TransactionRequest) (models.PostedTransaction, error) {
	debits, credits, err := Validate(req.Debits, req.Credits)
	if err != nil {
		return models.PostedTransaction{}, err
	}
	if req.Date.IsZero() {
		return models.PostedTransaction{}, ErrMissingDate
	}

	l.mu.Lock()
	if req.IdempotencyKey != "" {
		if posted, ok := l.idempotency[req.IdempotencyKey]; ok {
			l.mu.Unlock()
			posted.Replayed = true
			return posted, nil
		}
	}

	txnID := uuid.NewString()
	date := models.DateOnly(req.Date)
	entries := make([]models.JournalEntry, 0, len(debits)+len(credits))
	for _, leg := range debits {
		entries = append(entries, newEntry(txnID, date, req, leg.Account, leg.Amount, true))
	}
	for _, leg := range credits {
		entries = append(entries, newEntry(txnID, date, req, leg.Account, leg.Amount, false))
	}

	stored := l.store.Append(entries...)
	if l.journal != nil {
		if err := l.journal.AppendEntries(ctx, stored); err != nil {
			for _, e := range stored {
				l.store.Remove(e.ID)
			}
			l.mu.Unlock()
			return models.PostedTransaction{}, fmt.Errorf("journal transaction: %w", err)
		}
	}

	posted := models.PostedTransaction{TransactionID: txnID, EntryIDs: make([]int64, 0, len(stored))}
	for _, e := range stored {
		posted.EntryIDs = append(posted.EntryIDs, e.ID)
	}
	if req.IdempotencyKey != "" {
		l.idempotency[req.IdempotencyKey] = posted
	}
	l.version.Add(1)
	l.mu.Unlock()

	amount := legTotal(debits)
	l.logger.Info("transaction posted",
		slog.String("transaction_id", txnID),
		slog.Int("legs", len(stored)),
		slog.String("amount", amount.String()),
	)
	l.publish(ctx, events.TypeTransactionPosted, events.TransactionPosted{
		TransactionID: txnID,
		EntryIDs:      posted.EntryIDs,
		Date:          date.Format(time.DateOnly),
		Description:   req.Description,
		Amount:        amount,
		OccurredAt:    l.now().UTC(),
	})
	return posted, nil
}

func newEntry(txnID string, date time.Time, req models.TransactionRequest, account string, amount decimal.Decimal, debit bool) models.JournalEntry {
	e := models.JournalEntry{
		TransactionID:  txnID,
		Date:           date,
		Account:        account,
		Debit:          decimal.Zero,
		Credit:         decimal.Zero,
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	}
	if debit {
		e.Debit = amount
	} else {
		e.Credit = amount
	}
	return e
}

// DeleteEntry removes one leg. The rest of its transaction stays in place.
func (l *Ledger) DeleteEntry(ctx context.Context, id int64) error {
	l.mu.Lock()
	entry, ok := l.store.Get(id)
	if !ok {
		l.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}
	if l.journal != nil {
		if err := l.journal.AppendTombstone(ctx, id); err != nil {
			l.mu.Unlock()
			return fmt.Errorf("journal tombstone: %w", err)
		}
	}
	l.store.Remove(id)
	l.version.Add(1)
	l.mu.Unlock()

	l.logger.Info("entry deleted", slog.Int64("entry_id", id), slog.String("account", entry.Account))
	l.publish(ctx, events.TypeEntryDeleted, events.EntryDeleted{
		EntryID:       id,
		TransactionID: entry.TransactionID,
		Account:       entry.Account,
		OccurredAt:    l.now().UTC(),
	})
	return nil
}

// ClearAll removes every entry and forgets idempotency keys. It returns the
// number of entries removed.
func (l *Ledger) ClearAll(ctx context.Context) (int, error) {
	l.mu.Lock()
	if l.journal != nil {
		if err := l.journal.AppendClear(ctx); err != nil {
			l.mu.Unlock()
			return 0, fmt.Errorf("journal clear: %w", err)
		}
	}
	removed := l.store.Clear()
	l.idempotency = make(map[string]models.PostedTransaction)
	l.version.Add(1)
	l.mu.Unlock()

	l.logger.Info("ledger cleared", slog.Int("removed", removed))
	l.publish(ctx, events.TypeLedgerCleared, events.LedgerCleared{
		RemovedEntries: removed,
		OccurredAt:     l.now().UTC(),
	})
	return removed, nil
}

// ListEntries returns a point-in-time copy of every entry in insertion order.
func (l *Ledger) ListEntries() []models.JournalEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.All()
}

func (l *Ledger) summaries() []models.AccountSummary {
	return aggregate.Summarize(l.ListEntries())
}

func (l *Ledger) TrialBalance() (reports.TrialBalance, bool) {
	return reports.BuildTrialBalance(l.summaries())
}

func (l *Ledger) BalanceSheet() (reports.BalanceSheet, bool) {
	return reports.BuildBalanceSheet(l.summaries(), l.classifier)
}

func (l *Ledger) IncomeStatement() (reports.IncomeStatement, bool) {
	return reports.BuildIncomeStatement(l.summaries(), l.classifier)
}

// FinancialRatios derives both statements from the same snapshot.
func (l *Ledger) FinancialRatios() (reports.RatioSet, bool) {
	s := l.summaries()
	bs, ok := reports.BuildBalanceSheet(s, l.classifier)
	if !ok {
		return reports.RatioSet{}, false
	}
	is, _ := reports.BuildIncomeStatement(s, l.classifier)
	return reports.BuildRatios(bs, is), true
}

func (l *Ledger) HealthScore() (reports.HealthScore, bool) {
	ratios, ok := l.FinancialRatios()
	if !ok {
		return reports.HealthScore{}, false
	}
	return reports.BuildHealthScore(ratios), true
}

func (l *Ledger) Dashboard() (reports.Dashboard, bool) {
	return reports.BuildDashboard(l.ListEntries())
}

// Reconciliation reports the trial balance and balance sheet checks of one snapshot.
func (l *Ledger) Reconciliation() (reports.Reconciliation, bool) {
	s := l.summaries()
	tb, ok := reports.BuildTrialBalance(s)
	if !ok {
		return reports.Reconciliation{}, false
	}
	bs, _ := reports.BuildBalanceSheet(s, l.classifier)
	return reports.Reconcile(tb, bs), true
}

func (l *Ledger) publish(ctx context.Context, eventType string, event any) {
	if l.publisher == nil {
		return
	}
	// the write has committed, so the caller's cancellation must not drop the event
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := l.publisher.Publish(ctx, eventType, event); err != nil {
		l.logger.Error("publish ledger event", slog.String("event_type", eventType), slog.Any("error", err))
	}
}
