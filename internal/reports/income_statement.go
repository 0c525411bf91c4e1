package reports

import (
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/ledger-reporting/internal/classifier"
	"github.com/sheikh-saqib/ledger-reporting/internal/models"
)

// IncomeStatement reports the period's flows. Revenue lines carry the
// account's credit total and expense lines its debit total.
type IncomeStatement struct {
	Revenue       Section         `json:"revenue"`
	Expenses      Section         `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"`
	Unclassified  []string        `json:"unclassified_accounts"`
}

// BuildIncomeStatement selects revenue and expense accounts from summaries.
func BuildIncomeStatement(summaries []models.AccountSummary, c classifier.Classifier) (IncomeStatement, bool) {
	if len(summaries) == 0 {
		return IncomeStatement{}, false
	}

	is := IncomeStatement{
		Revenue:      newSection("Revenue"),
		Expenses:     newSection("Expenses"),
		Unclassified: []string{},
	}
	for _, s := range summaries {
		cl := classify(c, s.Account)
		switch cl.Category {
		case classifier.Revenue:
			is.Revenue.add(StatementLine{Account: s.Account, Role: cl.Role, Amount: s.Credit})
		case classifier.Expense:
			is.Expenses.add(StatementLine{Account: s.Account, Role: cl.Role, Amount: s.Debit})
		case classifier.Unclassified:
			is.Unclassified = append(is.Unclassified, s.Account)
		}
	}

	is.TotalRevenue = is.Revenue.Total
	is.TotalExpenses = is.Expenses.Total
	is.NetIncome = is.TotalRevenue.Sub(is.TotalExpenses)
	return is, true
}
