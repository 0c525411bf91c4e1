package api

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

const noTransactionsMessage = "No transactions available"

// envelope wraps every successful JSON response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetail is an RFC7807 problem document.
type ProblemDetail struct {
	Type      string            `json:"type,omitempty"`
	Title     string            `json:"title"`
	Status    int               `json:"status"`
	Detail    string            `json:"detail,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Imbalance *imbalanceDetail  `json:"imbalance,omitempty"`
}

type imbalanceDetail struct {
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Delta       decimal.Decimal `json:"delta"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, p ProblemDetail) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

func problem(w http.ResponseWriter, status int, title, detail string) {
	writeProblem(w, ProblemDetail{Title: title, Status: status, Detail: detail})
}

// writeEmptyLedger answers a report request on a ledger without entries.
// It is a normal state, so the status stays 200.
func writeEmptyLedger(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, envelope{Success: false, Message: noTransactionsMessage})
}
