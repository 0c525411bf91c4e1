package reports

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/ledger-reporting/internal/classifier"
	"github.com/sheikh-saqib/ledger-reporting/internal/models"
)

func TestWithinTolerance(t *testing.T) {
	assert.True(t, WithinTolerance(dec("100"), dec("99.99")))
	assert.True(t, WithinTolerance(dec("100"), dec("100.01")))
	assert.False(t, WithinTolerance(dec("100"), dec("99.98")))
}

func TestBuildTrialBalance(t *testing.T) {
	tb, ok := BuildTrialBalance(summaries(sampleEntries()...))
	require.True(t, ok)

	assert.True(t, tb.IsBalanced)
	assert.True(t, tb.TotalDebits.Equal(dec("115000")))
	assert.True(t, tb.TotalCredits.Equal(dec("115000")))
	assert.True(t, tb.Difference.IsZero())

	require.Equal(t, "Accounts Payable", tb.Rows[0].Account)
	assert.True(t, tb.Rows[0].Balance.Equal(dec("-8000")))
	for _, row := range tb.Rows {
		if row.Account == "Cash" {
			assert.True(t, row.Balance.Equal(dec("53000")))
		}
	}
}

func TestTrialBalanceIncludesUnclassifiedAccounts(t *testing.T) {
	tb, ok := BuildTrialBalance(summaries(debit("Suspense", "10"), credit("Cash", "10")))
	require.True(t, ok)
	require.Len(t, tb.Rows, 2)
	assert.Equal(t, "Cash", tb.Rows[0].Account)
	assert.Equal(t, "Suspense", tb.Rows[1].Account)
}

func TestTrialBalanceUnbalancedAfterOneSidedLeg(t *testing.T) {
	tb, ok := BuildTrialBalance(summaries(debit("Cash", "100")))
	require.True(t, ok)
	assert.False(t, tb.IsBalanced)
	assert.True(t, tb.Difference.Equal(dec("100")))
	assert.Equal(t, Check{IsBalanced: false, Delta: tb.Difference}, tb.Check())
}

func TestTrialBalanceIsDeterministic(t *testing.T) {
	entries := sampleEntries()
	reversed := make([]models.JournalEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		reversed = append(reversed, entries[i])
	}
	first, _ := BuildTrialBalance(summaries(entries...))
	second, _ := BuildTrialBalance(summaries(reversed...))

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestBuildBalanceSheetEquation(t *testing.T) {
	s := summaries(
		debit("Cash", "1000"), credit("Capital", "600"), credit("Loan", "400"),
	)

	bs, ok := BuildBalanceSheet(s, defaults())
	require.True(t, ok)
	assert.True(t, bs.TotalAssets.Equal(dec("1000")))
	assert.True(t, bs.TotalLiabilities.Equal(dec("400")))
	assert.True(t, bs.TotalEquity.Equal(dec("600")))
	assert.True(t, bs.BalanceCheck.IsZero())
	assert.True(t, bs.IsBalanced)
	assert.Empty(t, bs.Unclassified)

	perturbed, ok := BuildBalanceSheet(summaries(
		debit("Cash", "1000"), credit("Capital", "600"), credit("Loan", "400"), debit("Cash", "10"),
	), defaults())
	require.True(t, ok)
	assert.True(t, perturbed.BalanceCheck.Equal(dec("10")))
	assert.False(t, perturbed.IsBalanced)
	assert.Equal(t, Check{IsBalanced: false, Delta: perturbed.BalanceCheck}, perturbed.Check())
}

func TestBalanceSheetNaturalSigns(t *testing.T) {
	bs, ok := BuildBalanceSheet(summaries(
		debit("Accounts Payable", "10"), credit("Accounts Payable", "40"),
		debit("Cash", "100"), credit("Cash", "20"),
	), defaults())
	require.True(t, ok)

	require.Len(t, bs.Liabilities.Accounts, 1)
	assert.True(t, bs.Liabilities.Accounts[0].Amount.Equal(dec("30")))
	assert.Equal(t, classifier.RoleCurrentLiability, bs.Liabilities.Accounts[0].Role)
	require.Len(t, bs.Assets.Accounts, 1)
	assert.True(t, bs.Assets.Accounts[0].Amount.Equal(dec("80")))
}

func TestBalanceSheetReportsUnclassified(t *testing.T) {
	bs, ok := BuildBalanceSheet(summaries(debit("Cash", "10"), credit("Mystery", "10")), defaults())
	require.True(t, ok)
	assert.Equal(t, []string{"Mystery"}, bs.Unclassified)
	assert.True(t, bs.TotalAssets.Equal(dec("10")))
	assert.True(t, bs.BalanceCheck.Equal(dec("10")))

	rec := Reconcile(TrialBalance{IsBalanced: true}, bs)
	assert.Equal(t, []string{"Mystery"}, rec.Unclassified)
	assert.False(t, rec.Balanced())
}

func TestBalanceSheetWithNilClassifier(t *testing.T) {
	bs, ok := BuildBalanceSheet(summaries(debit("Cash", "10"), credit("Capital", "10")), nil)
	require.True(t, ok)
	assert.Equal(t, []string{"Capital", "Cash"}, bs.Unclassified)
	assert.True(t, bs.IsBalanced)
}

func TestBuildIncomeStatement(t *testing.T) {
	is, ok := BuildIncomeStatement(summaries(sampleEntries()...), defaults())
	require.True(t, ok)

	assert.True(t, is.TotalRevenue.Equal(dec("35000")))
	assert.True(t, is.TotalExpenses.Equal(dec("7000")))
	assert.True(t, is.NetIncome.Equal(dec("28000")))
	require.Len(t, is.Expenses.Accounts, 2)
	assert.Equal(t, "Rent Expense", is.Expenses.Accounts[0].Account)
	assert.Empty(t, is.Unclassified)
}

func TestIncomeStatementUsesGrossSides(t *testing.T) {
	is, ok := BuildIncomeStatement(summaries(
		credit("Sales Revenue", "100"), debit("Sales Revenue", "20"),
		debit("Rent Expense", "30"), credit("Rent Expense", "5"),
	), defaults())
	require.True(t, ok)
	assert.True(t, is.TotalRevenue.Equal(dec("100")))
	assert.True(t, is.TotalExpenses.Equal(dec("30")))
}

func TestEmptyLedgerBuildsNothing(t *testing.T) {
	_, ok := BuildTrialBalance(nil)
	assert.False(t, ok)
	_, ok = BuildBalanceSheet(nil, defaults())
	assert.False(t, ok)
	_, ok = BuildIncomeStatement(nil, defaults())
	assert.False(t, ok)
	_, ok = BuildDashboard(nil)
	assert.False(t, ok)
}

func TestReconcileDefaultsUnclassifiedToEmpty(t *testing.T) {
	rec := Reconcile(TrialBalance{IsBalanced: true}, BalanceSheet{IsBalanced: true})
	assert.NotNil(t, rec.Unclassified)
	assert.True(t, rec.Balanced())
}

func TestBuildDashboard(t *testing.T) {
	entries := sampleEntries()
	entries = append(entries, debit("Cash", "1.50"))

	d, ok := BuildDashboard(entries)
	require.True(t, ok)
	assert.Equal(t, 15, d.EntryCount)
	assert.True(t, d.Difference.Equal(dec("1.5")))
	require.Len(t, d.Timeline, 1)
	assert.Equal(t, "2024-01-15", d.Timeline[0].Date)
	assert.Len(t, d.AccountSummary, 9)
}
