package reports

import (
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/ledger-reporting/internal/classifier"
	"github.com/sheikh-saqib/ledger-reporting/internal/models"
)

// StatementLine is an account amount in its category's natural sign.
type StatementLine struct {
	Account string          `json:"account"`
	Role    classifier.Role `json:"role,omitempty"`
	Amount  decimal.Decimal `json:"amount"`
}

// Section groups the lines of one statement category.
type Section struct {
	Label    string          `json:"label"`
	Accounts []StatementLine `json:"accounts"`
	Total    decimal.Decimal `json:"total"`
}

func (s *Section) add(line StatementLine) {
	s.Accounts = append(s.Accounts, line)
	s.Total = s.Total.Add(line.Amount)
}

// RoleTotal sums the lines tagged with role.
func (s Section) RoleTotal(role classifier.Role) decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Accounts {
		if line.Role == role {
			total = total.Add(line.Amount)
		}
	}
	return total
}

// HasRole reports whether any line carries role.
func (s Section) HasRole(role classifier.Role) bool {
	for _, line := range s.Accounts {
		if line.Role == role {
			return true
		}
	}
	return false
}

// BalanceSheet is the point-in-time position. BalanceCheck is
// Assets - (Liabilities + Equity).
type BalanceSheet struct {
	Assets                    Section         `json:"assets"`
	Liabilities               Section         `json:"liabilities"`
	Equity                    Section         `json:"equity"`
	TotalAssets               decimal.Decimal `json:"total_assets"`
	TotalLiabilities          decimal.Decimal `json:"total_liabilities"`
	TotalEquity               decimal.Decimal `json:"total_equity"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"total_liabilities_and_equity"`
	BalanceCheck              decimal.Decimal `json:"balance_check"`
	IsBalanced                bool            `json:"is_balanced"`
	Unclassified              []string        `json:"unclassified_accounts"`
}

// BuildBalanceSheet partitions summaries into assets, liabilities and equity.
// Accounts without a classification are listed in Unclassified and left out of the totals.
func BuildBalanceSheet(summaries []models.AccountSummary, c classifier.Classifier) (BalanceSheet, bool) {
	if len(summaries) == 0 {
		return BalanceSheet{}, false
	}

	bs := BalanceSheet{
		Assets:       newSection("Assets"),
		Liabilities:  newSection("Liabilities"),
		Equity:       newSection("Equity"),
		Unclassified: []string{},
	}
	for _, s := range summaries {
		cl := classify(c, s.Account)
		line := StatementLine{Account: s.Account, Role: cl.Role, Amount: naturalBalance(s, cl.Category)}
		switch cl.Category {
		case classifier.Asset:
			bs.Assets.add(line)
		case classifier.Liability:
			bs.Liabilities.add(line)
		case classifier.Equity:
			bs.Equity.add(line)
		case classifier.Unclassified:
			bs.Unclassified = append(bs.Unclassified, s.Account)
		}
	}

	bs.TotalAssets = bs.Assets.Total
	bs.TotalLiabilities = bs.Liabilities.Total
	bs.TotalEquity = bs.Equity.Total
	bs.TotalLiabilitiesAndEquity = bs.TotalLiabilities.Add(bs.TotalEquity)
	bs.BalanceCheck = bs.TotalAssets.Sub(bs.TotalLiabilitiesAndEquity)
	bs.IsBalanced = bs.BalanceCheck.Abs().LessThanOrEqual(Tolerance)
	return bs, true
}

func newSection(label string) Section {
	return Section{Label: label, Accounts: []StatementLine{}, Total: decimal.Zero}
}

// naturalBalance is debit-positive for assets and expenses, credit-positive otherwise.
func naturalBalance(s models.AccountSummary, category classifier.Category) decimal.Decimal {
	if category.DebitNormal() {
		return s.Debit.Sub(s.Credit)
	}
	return s.Credit.Sub(s.Debit)
}

func classify(c classifier.Classifier, account string) classifier.Classification {
	if c == nil {
		return classifier.Classification{}
	}
	return c.Classify(account)
}
