package postgres

import (
	"context"
	"database/sql" // driver-agnostic SQL access, lib/pq registers "postgres"
	"fmt"
	"slices"

	_ "github.com/lib/pq" // postgres driver
	"github.com/shopspring/decimal"

	interfaces "github.com/sheikh-saqib/ledger-reporting/internal/interfaces" // interface Journal
	"github.com/sheikh-saqib/ledger-reporting/internal/models"                // domain models: JournalEntry
)

// Record kinds stored in ledger_records.
const (
	kindEntry     = "entry"
	kindTombstone = "tombstone"
	kindClear     = "clear"
)

const schema = `CREATE TABLE IF NOT EXISTS ledger_records (
	seq             BIGSERIAL PRIMARY KEY,
	kind            TEXT NOT NULL,
	entry_id        BIGINT,
	transaction_id  TEXT,
	entry_date      DATE,
	account         TEXT,
	debit           NUMERIC(20,4),
	credit          NUMERIC(20,4),
	description     TEXT,
	idempotency_key TEXT,
	recorded_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresJournal is an append-only record of ledger writes. Nothing is ever
// updated or deleted; the live ledger is rebuilt by replaying records in seq order.
type PostgresJournal struct {
	db *sql.DB
}

// Open connects to dsn with the lib/pq driver and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	// sql.Open is lazy, ping to fail fast on a bad DSN
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// NewPostgresJournal wraps an open connection pool.
func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{
		db: db,
	}
}

// Migrate creates the records table when missing.
func (p *PostgresJournal) Migrate(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, schema)
	return err
}

// AppendEntries writes every leg of one transaction in a single SQL transaction.
func (p *PostgresJournal) AppendEntries(ctx context.Context, entries []models.JournalEntry) (err error) {
	const query = `INSERT INTO ledger_records
	(kind, entry_id, transaction_id, entry_date, account, debit, credit, description, idempotency_key)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// err is the named result, so any failure below rolls the whole group back
	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	// one row per leg, all sharing the transaction id
	for _, e := range entries {
		_, err = dbTx.ExecContext(ctx, query,
			kindEntry, e.ID, e.TransactionID, e.Date, e.Account, e.Debit, e.Credit, e.Description, e.IdempotencyKey)
		if err != nil {
			return err
		}
	}
	return dbTx.Commit()
}

// AppendTombstone marks one entry as deleted. The entry row itself stays.
func (p *PostgresJournal) AppendTombstone(ctx context.Context, id int64) error {
	const query = `INSERT INTO ledger_records (kind, entry_id) VALUES ($1,$2)`

	_, err := p.db.ExecContext(ctx, query, kindTombstone, id)
	return err
}

// AppendClear marks every earlier entry as removed.
func (p *PostgresJournal) AppendClear(ctx context.Context) error {
	const query = `INSERT INTO ledger_records (kind) VALUES ($1)`

	_, err := p.db.ExecContext(ctx, query, kindClear)
	return err
}

// Replay returns the live entries in insertion order and the highest entry id
// ever recorded, including ids later tombstoned or cleared.
func (p *PostgresJournal) Replay(ctx context.Context) ([]models.JournalEntry, int64, error) {
	const query = `SELECT kind, entry_id, transaction_id, entry_date, account, debit, credit, description, idempotency_key
	FROM ledger_records ORDER BY seq`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var (
		live   []models.JournalEntry
		lastID int64
	)
	for rows.Next() {
		var (
			kind                          string
			entryID                       sql.NullInt64
			txnID, account, desc, idemKey sql.NullString
			date                          sql.NullTime
			debit, credit                 decimal.NullDecimal
		)
		if err := rows.Scan(&kind, &entryID, &txnID, &date, &account, &debit, &credit, &desc, &idemKey); err != nil {
			return nil, 0, err
		}

		switch kind {
		case kindEntry:
			live = append(live, models.JournalEntry{
				ID:             entryID.Int64,
				TransactionID:  txnID.String,
				Date:           models.DateOnly(date.Time),
				Account:        account.String,
				Debit:          debit.Decimal,
				Credit:         credit.Decimal,
				Description:    desc.String,
				IdempotencyKey: idemKey.String,
			})
			lastID = max(lastID, entryID.Int64) // retired ids still count
		case kindTombstone:
			live = slices.DeleteFunc(live, func(e models.JournalEntry) bool { return e.ID == entryID.Int64 })
		case kindClear:
			live = live[:0] // ids keep growing after a clear
		default:
			return nil, 0, fmt.Errorf("unknown ledger record kind %q", kind)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return live, lastID, nil
}

var _ interfaces.Journal = (*PostgresJournal)(nil)
