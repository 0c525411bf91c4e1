package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/ledger-reporting/internal/aggregate"
	"github.com/sheikh-saqib/ledger-reporting/internal/models"
)

// TimelinePoint is the debit and credit activity booked on one date.
type TimelinePoint struct {
	Date   string          `json:"date"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// Dashboard holds the headline ledger metrics.
type Dashboard struct {
	TotalDebits    decimal.Decimal         `json:"total_debits"`
	TotalCredits   decimal.Decimal         `json:"total_credits"`
	Difference     decimal.Decimal         `json:"difference"`
	EntryCount     int                     `json:"entry_count"`
	AccountSummary []models.AccountSummary `json:"account_summary"`
	Timeline       []TimelinePoint         `json:"timeline"`
}

// BuildDashboard summarises entries. Difference is the absolute gap between
// total debits and total credits.
func BuildDashboard(entries []models.JournalEntry) (Dashboard, bool) {
	if len(entries) == 0 {
		return Dashboard{}, false
	}

	summaries := aggregate.Summarize(entries)
	debit, credit := aggregate.Totals(summaries)

	days := aggregate.Timeline(entries)
	timeline := make([]TimelinePoint, 0, len(days))
	for _, d := range days {
		timeline = append(timeline, TimelinePoint{
			Date:   d.Date.Format(time.DateOnly),
			Debit:  d.Debit,
			Credit: d.Credit,
		})
	}

	return Dashboard{
		TotalDebits:    debit,
		TotalCredits:   credit,
		Difference:     debit.Sub(credit).Abs(),
		EntryCount:     len(entries),
		AccountSummary: summaries,
		Timeline:       timeline,
	}, true
}
