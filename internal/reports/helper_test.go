package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/ledger-reporting/internal/aggregate"
	"github.com/sheikh-saqib/ledger-reporting/internal/classifier"
	"github.com/sheikh-saqib/ledger-reporting/internal/models"
)

var testDate = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func debit(account, amount string) models.JournalEntry {
	return models.JournalEntry{Date: testDate, Account: account, Debit: dec(amount), Credit: decimal.Zero}
}

func credit(account, amount string) models.JournalEntry {
	return models.JournalEntry{Date: testDate, Account: account, Debit: decimal.Zero, Credit: dec(amount)}
}

// sampleEntries mirrors the demo data: capital, equipment, inventory on
// credit, cash and credit sales, salaries and rent.
func sampleEntries() []models.JournalEntry {
	return []models.JournalEntry{
		debit("Cash", "50000"), credit("Capital", "50000"),
		debit("Equipment", "15000"), credit("Cash", "15000"),
		debit("Inventory", "8000"), credit("Accounts Payable", "8000"),
		debit("Cash", "25000"), credit("Sales Revenue", "25000"),
		debit("Salaries Expense", "5000"), credit("Cash", "5000"),
		debit("Rent Expense", "2000"), credit("Cash", "2000"),
		debit("Accounts Receivable", "10000"), credit("Sales Revenue", "10000"),
	}
}

func summaries(entries ...models.JournalEntry) []models.AccountSummary {
	return aggregate.Summarize(entries)
}

func defaults() classifier.Classifier { return classifier.Defaults() }
