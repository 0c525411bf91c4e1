package reports

import (
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/ledger-reporting/internal/classifier"
)

// Ratio category names.
const (
	CategoryLiquidity     = "liquidity"
	CategoryProfitability = "profitability"
	CategoryEfficiency    = "efficiency"
	CategorySolvency      = "solvency"
)

// Ratio names.
const (
	RatioCurrent              = "Current Ratio"
	RatioQuick                = "Quick Ratio"
	RatioCash                 = "Cash Ratio"
	RatioGrossMargin          = "Gross Profit Margin"
	RatioNetMargin            = "Net Profit Margin"
	RatioReturnOnAssets       = "Return on Assets"
	RatioReturnOnEquity       = "Return on Equity"
	RatioOperatingMargin      = "Operating Profit Margin"
	RatioAssetTurnover        = "Asset Turnover"
	RatioInventoryTurnover    = "Inventory Turnover"
	RatioReceivablesTurnover  = "Receivables Turnover"
	RatioDaysSalesOutstanding = "Days Sales Outstanding"
	RatioDaysInventory        = "Days Inventory Outstanding"
	RatioDebtToAssets         = "Debt to Assets"
	RatioDebtToEquity         = "Debt to Equity"
	RatioEquity               = "Equity Ratio"
	RatioInterestCoverage     = "Interest Coverage"
)

// Units a ratio value is expressed in.
const (
	UnitTimes   = "times"
	UnitPercent = "percent"
	UnitDays    = "days"
)

const ratioDigits = 4

var (
	hundred  = decimal.NewFromInt(100)
	yearDays = decimal.NewFromInt(365)
	one      = decimal.NewFromInt(1)
)

// Ratio is a single named indicator. Value is invalid (JSON null) when the
// denominator is zero.
type Ratio struct {
	Name        string              `json:"name"`
	Value       decimal.NullDecimal `json:"value"`
	Unit        string              `json:"unit"`
	Description string              `json:"description"`
	Benchmark   string              `json:"benchmark,omitempty"`
}

// RatioCategory groups related ratios.
type RatioCategory struct {
	Name   string  `json:"name"`
	Ratios []Ratio `json:"ratios"`
}

// RatioSet is the full set of indicators in a fixed order.
type RatioSet struct {
	Categories []RatioCategory `json:"categories"`
}

// Lookup finds a ratio by name.
func (s RatioSet) Lookup(name string) (Ratio, bool) {
	for _, c := range s.Categories {
		for _, r := range c.Ratios {
			if r.Name == name {
				return r, true
			}
		}
	}
	return Ratio{}, false
}

// ratioInputs are the statement lines the ratio formulas read.
type ratioInputs struct {
	totalAssets, totalLiabilities, totalEquity decimal.Decimal
	revenue, expenses, netIncome                decimal.Decimal
	cash, receivables, inventory                decimal.Decimal
	currentLiabilities                          decimal.Decimal
	costOfSales, interest                       decimal.Decimal
}

func inputsFrom(bs BalanceSheet, is IncomeStatement) ratioInputs {
	in := ratioInputs{
		totalAssets:      bs.TotalAssets,
		totalLiabilities: bs.TotalLiabilities,
		totalEquity:      bs.TotalEquity,
		revenue:          is.TotalRevenue,
		expenses:         is.TotalExpenses,
		netIncome:        is.NetIncome,
		cash:             bs.Assets.RoleTotal(classifier.RoleCash),
		receivables:      bs.Assets.RoleTotal(classifier.RoleReceivable),
		inventory:        bs.Assets.RoleTotal(classifier.RoleInventory),
		costOfSales:      is.Expenses.RoleTotal(classifier.RoleCostOfSales),
		interest:         is.Expenses.RoleTotal(classifier.RoleInterest),
	}
	if bs.Liabilities.HasRole(classifier.RoleCurrentLiability) {
		in.currentLiabilities = bs.Liabilities.RoleTotal(classifier.RoleCurrentLiability)
	} else {
		in.currentLiabilities = bs.TotalLiabilities
	}
	return in
}

// BuildRatios computes liquidity, profitability, efficiency and solvency
// ratios from the statement totals.
func BuildRatios(bs BalanceSheet, is IncomeStatement) RatioSet {
	in := inputsFrom(bs, is)
	currentAssets := in.cash.Add(in.receivables).Add(in.inventory)
	grossProfit := in.revenue.Sub(in.costOfSales)
	operatingProfit := in.revenue.Sub(in.expenses).Add(in.interest)

	return RatioSet{Categories: []RatioCategory{
		{Name: CategoryLiquidity, Ratios: []Ratio{
			{Name: RatioCurrent, Value: divide(currentAssets, in.currentLiabilities, one), Unit: UnitTimes,
				Description: "Ability to pay short-term obligations", Benchmark: ">= 2.0 excellent, >= 1.0 adequate"},
			{Name: RatioQuick, Value: divide(currentAssets.Sub(in.inventory), in.currentLiabilities, one), Unit: UnitTimes,
				Description: "Ability to pay short-term obligations without selling inventory", Benchmark: ">= 1.0 good"},
			{Name: RatioCash, Value: divide(in.cash, in.currentLiabilities, one), Unit: UnitTimes,
				Description: "Ability to pay short-term obligations from cash alone", Benchmark: ">= 0.5 good"},
		}},
		{Name: CategoryProfitability, Ratios: []Ratio{
			{Name: RatioGrossMargin, Value: divide(grossProfit, in.revenue, hundred), Unit: UnitPercent,
				Description: "Share of revenue retained after cost of sales", Benchmark: ">= 40% excellent, >= 20% good"},
			{Name: RatioNetMargin, Value: divide(in.netIncome, in.revenue, hundred), Unit: UnitPercent,
				Description: "Share of revenue that becomes profit", Benchmark: ">= 20% excellent, >= 10% good"},
			{Name: RatioReturnOnAssets, Value: divide(in.netIncome, in.totalAssets, hundred), Unit: UnitPercent,
				Description: "Profit generated per unit of assets", Benchmark: ">= 5% strong, >= 2% moderate"},
			{Name: RatioReturnOnEquity, Value: divide(in.netIncome, in.totalEquity, hundred), Unit: UnitPercent,
				Description: "Return on the owners' investment", Benchmark: ">= 15% excellent, >= 10% good"},
			{Name: RatioOperatingMargin, Value: divide(operatingProfit, in.revenue, hundred), Unit: UnitPercent,
				Description: "Profit from operations before interest", Benchmark: ">= 15% strong"},
		}},
		{Name: CategoryEfficiency, Ratios: []Ratio{
			{Name: RatioAssetTurnover, Value: divide(in.revenue, in.totalAssets, one), Unit: UnitTimes,
				Description: "Revenue generated per unit of assets", Benchmark: ">= 2.0 excellent, >= 1.0 good"},
			{Name: RatioInventoryTurnover, Value: divide(in.costOfSales, in.inventory, one), Unit: UnitTimes,
				Description: "How often inventory is sold and replaced", Benchmark: ">= 6 good, varies by industry"},
			{Name: RatioReceivablesTurnover, Value: divide(in.revenue, in.receivables, one), Unit: UnitTimes,
				Description: "How quickly receivables are collected", Benchmark: ">= 10 excellent"},
			{Name: RatioDaysSalesOutstanding, Value: divide(in.receivables, in.revenue, yearDays), Unit: UnitDays,
				Description: "Average days to collect receivables", Benchmark: "<= 45 days good"},
			{Name: RatioDaysInventory, Value: divide(in.inventory, in.costOfSales, yearDays), Unit: UnitDays,
				Description: "Average days inventory is held", Benchmark: "<= 60 days good, varies by industry"},
		}},
		{Name: CategorySolvency, Ratios: []Ratio{
			{Name: RatioDebtToAssets, Value: divide(in.totalLiabilities, in.totalAssets, hundred), Unit: UnitPercent,
				Description: "Share of assets financed by liabilities", Benchmark: "<= 40% low risk, <= 60% moderate"},
			{Name: RatioDebtToEquity, Value: divide(in.totalLiabilities, in.totalEquity, one), Unit: UnitTimes,
				Description: "Liabilities per unit of equity", Benchmark: "<= 1.0 conservative, <= 2.0 moderate"},
			{Name: RatioEquity, Value: divide(in.totalEquity, in.totalAssets, hundred), Unit: UnitPercent,
				Description: "Share of assets financed by equity", Benchmark: ">= 60% strong, >= 40% adequate"},
			{Name: RatioInterestCoverage, Value: divide(in.netIncome.Add(in.interest), in.interest, one), Unit: UnitTimes,
				Description: "Ability to pay interest on debt", Benchmark: ">= 3.0 good, >= 1.5 adequate"},
		}},
	}}
}

// divide returns num/den*scale rounded to four places, or an invalid value
// when den is zero.
func divide(num, den, scale decimal.Decimal) decimal.NullDecimal {
	if den.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(num.Mul(scale).Div(den).Round(ratioDigits))
}
