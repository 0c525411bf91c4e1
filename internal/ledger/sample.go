package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/ledger-reporting/internal/models"
)

type samplePosting struct {
	date          string
	description   string
	debit, credit string
	amount        int64
}

var samplePostings = []samplePosting{
	{"2024-01-15", "Initial capital", "Cash", "Capital", 50000},
	{"2024-01-20", "Purchase equipment", "Equipment", "Cash", 15000},
	{"2024-01-25", "Purchase inventory", "Inventory", "Accounts Payable", 8000},
	{"2024-02-01", "Sales revenue", "Cash", "Sales Revenue", 25000},
	{"2024-02-05", "Employee salaries", "Salaries Expense", "Cash", 5000},
	{"2024-02-10", "Office rent", "Rent Expense", "Cash", 2000},
	{"2024-02-15", "Sales on credit", "Accounts Receivable", "Sales Revenue", 10000},
}

// SampleTransactions returns the demo transactions of a small trading business.
func SampleTransactions() []models.TransactionRequest {
	out := make([]models.TransactionRequest, 0, len(samplePostings))
	for _, p := range samplePostings {
		date, _ := time.Parse(time.DateOnly, p.date)
		amount := decimal.NewFromInt(p.amount)
		out = append(out, models.TransactionRequest{
			Date:        date,
			Description: p.description,
			Debits:      []models.Leg{{Account: p.debit, Amount: amount}},
			Credits:     []models.Leg{{Account: p.credit, Amount: amount}},
		})
	}
	return out
}

// LoadSample replaces the ledger contents with SampleTransactions and
// returns the number of entries posted.
func (l *Ledger) LoadSample(ctx context.Context) (int, error) {
	if _, err := l.ClearAll(ctx); err != nil {
		return 0, err
	}
	count := 0
	for _, req := range SampleTransactions() {
		posted, err := l.SubmitTransaction(ctx, req)
		if err != nil {
			return count, err
		}
		count += len(posted.EntryIDs)
	}
	return count, nil
}
