package ledger

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/sheikh-saqib/ledger-reporting/internal/reports"
)

var ledgerCSVHeader = []string{"date", "account", "debit", "credit", "description"}

// WriteCSV writes every entry in insertion order. An empty ledger yields the
// header row only.
func (l *Ledger) WriteCSV(w io.Writer) error {
	entries := l.ListEntries()

	writer := csv.NewWriter(w)
	if err := writer.Write(ledgerCSVHeader); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			e.Date.Format(time.DateOnly),
			e.Account,
			e.Debit.StringFixed(2),
			e.Credit.StringFixed(2),
			e.Description,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteBalanceSheetCSV reports false without writing when the ledger is empty.
func (l *Ledger) WriteBalanceSheetCSV(w io.Writer, currency string) (bool, error) {
	bs, ok := l.BalanceSheet()
	if !ok {
		return false, nil
	}
	return true, reports.WriteBalanceSheetCSV(w, bs, currency, l.now())
}

// WriteIncomeStatementCSV reports false without writing when the ledger is empty.
func (l *Ledger) WriteIncomeStatementCSV(w io.Writer, currency string) (bool, error) {
	is, ok := l.IncomeStatement()
	if !ok {
		return false, nil
	}
	return true, reports.WriteIncomeStatementCSV(w, is, currency, l.now())
}
