package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyTransaction indicates no non-zero legs were submitted.
	ErrEmptyTransaction = errors.New("ledger: transaction has no legs")
	// ErrInvalidLeg indicates a negative amount or a blank account name.
	ErrInvalidLeg = errors.New("ledger: invalid leg")
	// ErrMissingDate indicates the transaction carries no date.
	ErrMissingDate = errors.New("ledger: transaction date required")
	// ErrEntryNotFound indicates the entry id is unknown or already removed.
	ErrEntryNotFound = errors.New("ledger: entry not found")
)

// ImbalanceError rejects a transaction whose sides differ by more than the tolerance.
type ImbalanceError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	// Delta is TotalDebit - TotalCredit.
	Delta decimal.Decimal
}

func (e *ImbalanceError) Error() string {
	return fmt.Sprintf("ledger: debits %s and credits %s differ by %s",
		e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2), e.Delta.StringFixed(2))
}
