package reports

import "github.com/shopspring/decimal"

// Check is the uniform balanced/unbalanced indicator for one statement.
type Check struct {
	IsBalanced bool            `json:"is_balanced"`
	Delta      decimal.Decimal `json:"delta"`
}

// Check reports total debits minus total credits.
func (tb TrialBalance) Check() Check {
	return Check{IsBalanced: tb.IsBalanced, Delta: tb.Difference}
}

// Check reports assets minus liabilities and equity.
func (bs BalanceSheet) Check() Check {
	return Check{IsBalanced: bs.IsBalanced, Delta: bs.BalanceCheck}
}

// Reconciliation collects the checks for every statement with an invariant,
// plus the accounts no classification rule covered.
type Reconciliation struct {
	TrialBalance Check    `json:"trial_balance"`
	BalanceSheet Check    `json:"balance_sheet"`
	Unclassified []string `json:"unclassified_accounts"`
}

// Reconcile wraps the balance checks of tb and bs.
func Reconcile(tb TrialBalance, bs BalanceSheet) Reconciliation {
	unclassified := bs.Unclassified
	if unclassified == nil {
		unclassified = []string{}
	}
	return Reconciliation{
		TrialBalance: tb.Check(),
		BalanceSheet: bs.Check(),
		Unclassified: unclassified,
	}
}

// Balanced reports whether every check passed.
func (r Reconciliation) Balanced() bool {
	return r.TrialBalance.IsBalanced && r.BalanceSheet.IsBalanced
}
