package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/sheikh-saqib/ledger-reporting/internal/cache"
	"github.com/sheikh-saqib/ledger-reporting/internal/reports"
)

var errEmptyLedger = errors.New("api: ledger has no entries")

type trialBalanceResponse struct {
	reports.TrialBalance
	Check reports.Check `json:"check"`
}

type balanceSheetResponse struct {
	reports.BalanceSheet
	Check reports.Check `json:"check"`
}

// report serves a derived report through the cache, keyed by the ledger
// version so any write invalidates it.
func (h *handler) report(name string, build func() (any, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := cache.BuildKey(h.deps.Ledger.ID(), h.deps.Ledger.Version(), name)
		var payload json.RawMessage
		err := h.deps.Cache.FetchJSON(r.Context(), key, &payload, func(context.Context) (any, error) {
			v, ok := build()
			if !ok {
				return nil, errEmptyLedger
			}
			return v, nil
		})
		switch {
		case errors.Is(err, errEmptyLedger):
			writeEmptyLedger(w)
		case err != nil:
			h.deps.Logger.Error("build report", slog.String("report", name), slog.Any("error", err))
			problem(w, http.StatusInternalServerError, "Internal Error", "")
		default:
			writeJSON(w, http.StatusOK, envelope{Success: true, Data: payload})
		}
	}
}

func (h *handler) trialBalance() (any, bool) {
	tb, ok := h.deps.Ledger.TrialBalance()
	return trialBalanceResponse{TrialBalance: tb, Check: tb.Check()}, ok
}

func (h *handler) balanceSheet() (any, bool) {
	bs, ok := h.deps.Ledger.BalanceSheet()
	return balanceSheetResponse{BalanceSheet: bs, Check: bs.Check()}, ok
}

func (h *handler) incomeStatement() (any, bool) { return h.deps.Ledger.IncomeStatement() }

func (h *handler) financialRatios() (any, bool) { return h.deps.Ledger.FinancialRatios() }

func (h *handler) healthScore() (any, bool) { return h.deps.Ledger.HealthScore() }

func (h *handler) dashboard() (any, bool) { return h.deps.Ledger.Dashboard() }

func (h *handler) reconciliation() (any, bool) { return h.deps.Ledger.Reconciliation() }

// statementExport renders a statement CSV, or the empty-ledger response.
func (h *handler) statementExport(filename string, write func(io.Writer, string) (bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		ok, err := write(&buf, h.deps.Currency)
		if err != nil {
			h.respondError(w, err)
			return
		}
		if !ok {
			writeEmptyLedger(w)
			return
		}
		writeCSV(w, filename, buf.Bytes())
	}
}
