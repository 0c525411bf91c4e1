package api

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/ledger-reporting/internal/models"
)

type legRequest struct {
	Account string          `json:"account" validate:"max=200"`
	Amount  decimal.Decimal `json:"amount"`
}

type submitTransactionRequest struct {
	Date        string       `json:"date" validate:"required,datetime=2006-01-02"`
	Description string       `json:"description" validate:"max=500"`
	Debits      []legRequest `json:"debits" validate:"max=100,dive"`
	Credits     []legRequest `json:"credits" validate:"max=100,dive"`
}

func (r submitTransactionRequest) toModel(idempotencyKey string) models.TransactionRequest {
	date, _ := time.Parse(time.DateOnly, r.Date)
	return models.TransactionRequest{
		IdempotencyKey: idempotencyKey,
		Date:           date,
		Description:    r.Description,
		Debits:         toLegs(r.Debits),
		Credits:        toLegs(r.Credits),
	}
}

func toLegs(in []legRequest) []models.Leg {
	out := make([]models.Leg, 0, len(in))
	for _, l := range in {
		out = append(out, models.Leg{Account: l.Account, Amount: l.Amount})
	}
	return out
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldErrors flattens validator output into field -> failed rule.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		out[field] = fe.Tag()
	}
	return out
}
