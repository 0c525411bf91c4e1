package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sheikh-saqib/ledger-reporting/internal/ledger"
	"github.com/sheikh-saqib/ledger-reporting/internal/models"
	"github.com/sheikh-saqib/ledger-reporting/internal/observability"
)

type entriesResponse struct {
	Entries []models.JournalEntry `json:"entries"`
	Count   int                   `json:"count"`
}

type countResponse struct {
	Count int `json:"count"`
}

func (h *handler) submitTransaction(w http.ResponseWriter, r *http.Request) {
	var req submitTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondDecodeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.deps.Metrics.TransactionSubmitted(observability.OutcomeRejected)
		writeProblem(w, ProblemDetail{
			Title:  "Validation Failed",
			Status: http.StatusBadRequest,
			Errors: fieldErrors(err),
		})
		return
	}

	posted, err := h.deps.Ledger.SubmitTransaction(r.Context(), req.toModel(r.Header.Get("Idempotency-Key")))
	if err != nil {
		h.deps.Metrics.TransactionSubmitted(submitOutcome(err))
		h.respondError(w, err)
		return
	}

	status, outcome := http.StatusCreated, observability.OutcomePosted
	if posted.Replayed {
		status, outcome = http.StatusOK, observability.OutcomeReplayed
	}
	h.deps.Metrics.TransactionSubmitted(outcome)
	writeJSON(w, status, envelope{
		Success: true,
		Message: fmt.Sprintf("Posted %d entries", len(posted.EntryIDs)),
		Data:    posted,
	})
}

func (h *handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	entries := h.deps.Ledger.ListEntries()
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    entriesResponse{Entries: entries, Count: len(entries)},
	})
}

func (h *handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		problem(w, http.StatusBadRequest, "Invalid Entry ID", "entry id must be a positive integer")
		return
	}
	if err := h.deps.Ledger.DeleteEntry(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.deps.Metrics.EntryDeleted()
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: fmt.Sprintf("Entry %d deleted", id)})
}

func (h *handler) clearTransactions(w http.ResponseWriter, r *http.Request) {
	removed, err := h.deps.Ledger.ClearAll(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.deps.Metrics.LedgerCleared()
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: fmt.Sprintf("Cleared %d entries", removed),
		Data:    countResponse{Count: removed},
	})
}

func (h *handler) loadSample(w http.ResponseWriter, r *http.Request) {
	count, err := h.deps.Ledger.LoadSample(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: fmt.Sprintf("Loaded %d sample entries", count),
		Data:    countResponse{Count: count},
	})
}

func (h *handler) exportTransactions(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.deps.Ledger.WriteCSV(&buf); err != nil {
		h.respondError(w, err)
		return
	}
	writeCSV(w, "transactions.csv", buf.Bytes())
}

func writeCSV(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *handler) respondDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		problem(w, http.StatusRequestEntityTooLarge, "Request Too Large", fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit))
		return
	}
	problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
}

// respondError maps ledger errors to problem documents.
func (h *handler) respondError(w http.ResponseWriter, err error) {
	var imbalance *ledger.ImbalanceError
	switch {
	case errors.As(err, &imbalance):
		writeProblem(w, ProblemDetail{
			Title:  "Unbalanced Transaction",
			Status: http.StatusUnprocessableEntity,
			Detail: err.Error(),
			Imbalance: &imbalanceDetail{
				TotalDebit:  imbalance.TotalDebit,
				TotalCredit: imbalance.TotalCredit,
				Delta:       imbalance.Delta,
			},
		})
	case rejected(err):
		problem(w, http.StatusUnprocessableEntity, "Invalid Transaction", err.Error())
	case errors.Is(err, ledger.ErrEntryNotFound):
		problem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		h.deps.Logger.Error("ledger request failed", slog.Any("error", err))
		problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

// rejected reports whether err is a validation failure of the submitted legs.
func rejected(err error) bool {
	return errors.Is(err, ledger.ErrEmptyTransaction) || errors.Is(err, ledger.ErrInvalidLeg) || errors.Is(err, ledger.ErrMissingDate)
}

func submitOutcome(err error) string {
	var imbalance *ledger.ImbalanceError
	if errors.As(err, &imbalance) || rejected(err) {
		return observability.OutcomeRejected
	}
	return observability.OutcomeFailed
}
