package reports

import (
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/ledger-reporting/internal/aggregate"
	"github.com/sheikh-saqib/ledger-reporting/internal/models"
)

// TrialBalanceRow is one account line of the trial balance.
type TrialBalanceRow struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

// TrialBalance lists every account with ledger-wide totals.
type TrialBalance struct {
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"total_debits"`
	TotalCredits decimal.Decimal   `json:"total_credits"`
	Difference   decimal.Decimal   `json:"difference"`
	IsBalanced   bool              `json:"is_balanced"`
}

// BuildTrialBalance needs no classification, so every account appears.
func BuildTrialBalance(summaries []models.AccountSummary) (TrialBalance, bool) {
	if len(summaries) == 0 {
		return TrialBalance{}, false
	}

	rows := make([]TrialBalanceRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, TrialBalanceRow{
			Account: s.Account,
			Debit:   s.Debit,
			Credit:  s.Credit,
			Balance: s.Debit.Sub(s.Credit),
		})
	}

	debit, credit := aggregate.Totals(summaries)
	return TrialBalance{
		Rows:         rows,
		TotalDebits:  debit,
		TotalCredits: credit,
		Difference:   debit.Sub(credit),
		IsBalanced:   WithinTolerance(debit, credit),
	}, true
}
