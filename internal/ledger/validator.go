package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/ledger-reporting/internal/models"
	"github.com/sheikh-saqib/ledger-reporting/internal/reports"
)

// Validate checks that debits and credits form a balanced transaction and
// returns the legs that will be posted. Zero-amount legs are dropped before
// any other check.
func Validate(debits, credits []models.Leg) ([]models.Leg, []models.Leg, error) {
	debits, err := postableLegs(debits)
	if err != nil {
		return nil, nil, err
	}
	credits, err = postableLegs(credits)
	if err != nil {
		return nil, nil, err
	}
	if len(debits) == 0 && len(credits) == 0 {
		return nil, nil, ErrEmptyTransaction
	}

	// a one-sided transaction never balances, however small its legs
	totalDebit, totalCredit := legTotal(debits), legTotal(credits)
	if len(debits) == 0 || len(credits) == 0 || !reports.WithinTolerance(totalDebit, totalCredit) {
		return nil, nil, &ImbalanceError{
			TotalDebit:  totalDebit,
			TotalCredit: totalCredit,
			Delta:       totalDebit.Sub(totalCredit),
		}
	}
	return debits, credits, nil
}

func postableLegs(legs []models.Leg) ([]models.Leg, error) {
	out := make([]models.Leg, 0, len(legs))
	for _, leg := range legs {
		if leg.Amount.IsZero() {
			continue
		}
		if leg.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: %s has negative amount %s", ErrInvalidLeg, leg.Account, leg.Amount)
		}
		if strings.TrimSpace(leg.Account) == "" {
			return nil, fmt.Errorf("%w: account name required", ErrInvalidLeg)
		}
		out = append(out, leg)
	}
	return out, nil
}

func legTotal(legs []models.Leg) decimal.Decimal {
	total := decimal.Zero
	for _, leg := range legs {
		total = total.Add(leg.Amount)
	}
	return total
}
