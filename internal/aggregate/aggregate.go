// Package aggregate reduces a ledger snapshot into per-account and per-date totals.
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/ledger-reporting/internal/models"
)

// Summarize returns one AccountSummary per distinct account, sorted
// alphabetically by account name (byte order).
func Summarize(entries []models.JournalEntry) []models.AccountSummary {
	byAccount := make(map[string]*models.AccountSummary)
	for _, e := range entries {
		s, ok := byAccount[e.Account]
		if !ok {
			s = &models.AccountSummary{Account: e.Account}
			byAccount[e.Account] = s
		}
		s.Debit = s.Debit.Add(e.Debit)
		s.Credit = s.Credit.Add(e.Credit)
	}

	result := make([]models.AccountSummary, 0, len(byAccount))
	for _, s := range byAccount {
		s.Net = s.Debit.Sub(s.Credit)
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Account < result[j].Account })
	return result
}

// ByDate buckets debit and credit sums by calendar date. Dates without
// entries are omitted.
func ByDate(entries []models.JournalEntry) map[time.Time]models.DateTotal {
	buckets := make(map[time.Time]models.DateTotal)
	for _, e := range entries {
		day := models.DateOnly(e.Date)
		total := buckets[day]
		total.Date = day
		total.Debit = total.Debit.Add(e.Debit)
		total.Credit = total.Credit.Add(e.Credit)
		buckets[day] = total
	}
	return buckets
}

// Timeline returns the ByDate buckets ordered by ascending date.
func Timeline(entries []models.JournalEntry) []models.DateTotal {
	buckets := ByDate(entries)
	result := make([]models.DateTotal, 0, len(buckets))
	for _, total := range buckets {
		result = append(result, total)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result
}

// Totals sums debit and credit columns across summaries.
func Totals(summaries []models.AccountSummary) (debit, credit decimal.Decimal) {
	for _, s := range summaries {
		debit = debit.Add(s.Debit)
		credit = credit.Add(s.Credit)
	}
	return debit, credit
}
