package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/ledger-reporting/internal/models"
)

var recordColumns = []string{
	"kind", "entry_id", "transaction_id", "entry_date", "account", "debit", "credit", "description", "idempotency_key",
}

func newMockJournal(t *testing.T) (*PostgresJournal, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresJournal(db), mock
}

func legs() []models.JournalEntry {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return []models.JournalEntry{
		{ID: 1, TransactionID: "t1", Date: date, Account: "Cash", Debit: decimal.NewFromInt(100), Credit: decimal.Zero, Description: "capital"},
		{ID: 2, TransactionID: "t1", Date: date, Account: "Capital", Debit: decimal.Zero, Credit: decimal.NewFromInt(100), Description: "capital"},
	}
}

func TestAppendEntriesCommitsOneTransaction(t *testing.T) {
	journal, mock := newMockJournal(t)
	insert := regexp.QuoteMeta("INSERT INTO ledger_records")

	mock.ExpectBegin()
	mock.ExpectExec(insert).
		WithArgs(kindEntry, int64(1), "t1", sqlmock.AnyArg(), "Cash", sqlmock.AnyArg(), sqlmock.AnyArg(), "capital", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(insert).
		WithArgs(kindEntry, int64(2), "t1", sqlmock.AnyArg(), "Capital", sqlmock.AnyArg(), sqlmock.AnyArg(), "capital", "").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	require.NoError(t, journal.AppendEntries(context.Background(), legs()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendEntriesRollsBackOnFailure(t *testing.T) {
	journal, mock := newMockJournal(t)
	insert := regexp.QuoteMeta("INSERT INTO ledger_records")

	mock.ExpectBegin()
	mock.ExpectExec(insert).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(insert).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := journal.AppendEntries(context.Background(), legs())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendTombstoneAndClear(t *testing.T) {
	journal, mock := newMockJournal(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ledger_records (kind, entry_id)")).
		WithArgs(kindTombstone, int64(7)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ledger_records (kind)")).
		WithArgs(kindClear).
		WillReturnResult(sqlmock.NewResult(2, 1))

	require.NoError(t, journal.AppendTombstone(context.Background(), 7))
	require.NoError(t, journal.AppendClear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplayAppliesTombstonesAndClears(t *testing.T) {
	journal, mock := newMockJournal(t)
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(recordColumns).
		AddRow(kindEntry, int64(1), "t1", date, "Cash", "100", "0", "capital", "k1").
		AddRow(kindEntry, int64(2), "t1", date, "Capital", "0", "100", "capital", "k1").
		AddRow(kindClear, nil, nil, nil, nil, nil, nil, nil, nil).
		AddRow(kindEntry, int64(3), "t2", date, "Cash", "40", "0", nil, nil).
		AddRow(kindEntry, int64(4), "t2", date, "Sales Revenue", "0", "40", nil, nil).
		AddRow(kindEntry, int64(5), "t3", date, "Rent Expense", "5", "0", nil, nil).
		AddRow(kindTombstone, int64(5), nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM ledger_records ORDER BY seq")).WillReturnRows(rows)

	entries, lastID, err := journal.Replay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), lastID)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(3), entries[0].ID)
	assert.Equal(t, "Sales Revenue", entries[1].Account)
	assert.True(t, entries[1].Credit.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, date, entries[0].Date)
	assert.Empty(t, entries[0].IdempotencyKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplayRejectsUnknownKind(t *testing.T) {
	journal, mock := newMockJournal(t)
	rows := sqlmock.NewRows(recordColumns).AddRow("rename", nil, nil, nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery("SELECT kind").WillReturnRows(rows)

	_, _, err := journal.Replay(context.Background())
	assert.ErrorContains(t, err, `unknown ledger record kind "rename"`)
}

func TestMigrate(t *testing.T) {
	journal, mock := newMockJournal(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS ledger_records")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, journal.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
