package reports

import "github.com/shopspring/decimal"

const maxHealthScore = 100

// HealthScore condenses the ratio set into a 0-100 score.
type HealthScore struct {
	Score      int             `json:"score"`
	MaxScore   int             `json:"max_score"`
	Percentage decimal.Decimal `json:"percentage"`
}

type scorer struct {
	ratio  string
	points func(v decimal.Decimal) int
}

// band awards points once a ratio reaches bound.
type band struct {
	bound  decimal.Decimal
	points int
}

// at builds a band from a decimal literal.
func at(bound string, points int) band {
	return band{bound: decimal.RequireFromString(bound), points: points}
}

// atLeast awards the points of the first band v reaches, checked in order.
func atLeast(bands ...band) func(decimal.Decimal) int {
	return func(v decimal.Decimal) int {
		for _, b := range bands {
			if v.GreaterThanOrEqual(b.bound) {
				return b.points
			}
		}
		return 0
	}
}

// atMost awards the points of the first band v stays within, checked in order.
func atMost(bands ...band) func(decimal.Decimal) int {
	return func(v decimal.Decimal) int {
		for _, b := range bands {
			if v.LessThanOrEqual(b.bound) {
				return b.points
			}
		}
		return 0
	}
}

var healthScorers = []scorer{
	// liquidity, 25 points
	{RatioCurrent, atLeast(at("2", 12), at("1", 8))},
	{RatioQuick, atLeast(at("1", 13), at("0.5", 8))},
	// profitability, 30 points
	{RatioNetMargin, func(v decimal.Decimal) int {
		if p := atLeast(at("20", 10), at("10", 7))(v); p > 0 {
			return p
		}
		if v.IsPositive() {
			return 4
		}
		return 0
	}},
	{RatioReturnOnAssets, atLeast(at("5", 10), at("2", 6))},
	{RatioReturnOnEquity, atLeast(at("15", 10), at("10", 6))},
	// efficiency, 20 points
	{RatioAssetTurnover, atLeast(at("2", 10), at("1", 6))},
	{RatioDaysSalesOutstanding, atMost(at("45", 10), at("90", 5))},
	// solvency, 25 points
	{RatioDebtToAssets, atMost(at("40", 10), at("60", 6))},
	{RatioDebtToEquity, atMost(at("1", 8), at("2", 4))},
	{RatioEquity, atLeast(at("60", 7), at("40", 4))},
}

// BuildHealthScore scores the ratio set. Ratios without a value earn nothing.
func BuildHealthScore(ratios RatioSet) HealthScore {
	score := 0
	for _, s := range healthScorers {
		r, ok := ratios.Lookup(s.ratio)
		if !ok || !r.Value.Valid {
			continue
		}
		score += s.points(r.Value.Decimal)
	}
	return HealthScore{
		Score:      score,
		MaxScore:   maxHealthScore,
		Percentage: decimal.NewFromInt(int64(score)).Mul(hundred).Div(decimal.NewFromInt(maxHealthScore)),
	}
}
