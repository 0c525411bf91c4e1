package reports

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const generatedLayout = "2006-01-02 15:04:05"

// FormatAmount renders amount for display in the given ISO currency.
// Unknown codes fall back to USD.
func FormatAmount(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(money.USD)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// WriteBalanceSheetCSV writes a sectioned balance sheet for download.
func WriteBalanceSheetCSV(w io.Writer, bs BalanceSheet, currency string, generated time.Time) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	records := [][]string{
		{"BALANCE SHEET"},
		{"Generated", generated.Format(generatedLayout)},
	}
	records = append(records, sectionRecords("ASSETS", "Balance", bs.Assets, "Total Assets", currency)...)
	records = append(records, sectionRecords("LIABILITIES", "Balance", bs.Liabilities, "Total Liabilities", currency)...)
	records = append(records, sectionRecords("EQUITY", "Balance", bs.Equity, "Total Equity", currency)...)
	records = append(records,
		[]string{"Total Liabilities & Equity", FormatAmount(bs.TotalLiabilitiesAndEquity, currency)},
		[]string{"Balance Check", FormatAmount(bs.BalanceCheck, currency)},
	)
	if len(bs.Unclassified) > 0 {
		records = append(records, append([]string{"Unclassified Accounts"}, bs.Unclassified...))
	}

	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return writer.Error()
}

// WriteIncomeStatementCSV writes a sectioned income statement for download.
func WriteIncomeStatementCSV(w io.Writer, is IncomeStatement, currency string, generated time.Time) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	records := [][]string{
		{"INCOME STATEMENT"},
		{"Generated", generated.Format(generatedLayout)},
	}
	records = append(records, sectionRecords("REVENUE", "Amount", is.Revenue, "Total Revenue", currency)...)
	records = append(records, sectionRecords("EXPENSES", "Amount", is.Expenses, "Total Expenses", currency)...)
	records = append(records, []string{"NET INCOME", FormatAmount(is.NetIncome, currency)})
	if len(is.Unclassified) > 0 {
		records = append(records, append([]string{"Unclassified Accounts"}, is.Unclassified...))
	}

	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return writer.Error()
}

func sectionRecords(title, column string, s Section, totalLabel, currency string) [][]string {
	records := [][]string{{title}, {"Account", column}}
	for _, line := range s.Accounts {
		records = append(records, []string{line.Account, FormatAmount(line.Amount, currency)})
	}
	return append(records, []string{totalLabel, FormatAmount(s.Total, currency)})
}
