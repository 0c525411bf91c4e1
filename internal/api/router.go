package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/sheikh-saqib/ledger-reporting/internal/cache"
	"github.com/sheikh-saqib/ledger-reporting/internal/ledger"
	"github.com/sheikh-saqib/ledger-reporting/internal/observability"
)

type Dependencies struct {
	Logger  *slog.Logger
	Ledger  *ledger.Ledger
	Cache   *cache.ReportCache     // optional
	Metrics *observability.Metrics // optional

	// Currency is the ISO code amounts are displayed in for statement exports.
	Currency           string
	Production         bool
	RequestTimeout     time.Duration
	RateLimitPerMinute int
	MaxBodyBytes       int64
}

type handler struct {
	deps     Dependencies
	validate *validator.Validate
}

func NewRouter(deps Dependencies) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Currency == "" {
		deps.Currency = "USD"
	}
	if deps.RequestTimeout <= 0 {
		deps.RequestTimeout = 30 * time.Second
	}
	h := &handler{deps: deps, validate: newValidator()}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(deps.Logger))
	r.Use(deps.Metrics.Middleware)
	r.Use(SecureHeaders(deps.Production, deps.Logger))
	r.Use(middleware.Timeout(deps.RequestTimeout))
	r.Use(BodySizeLimit(deps.MaxBodyBytes))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if deps.RateLimitPerMinute > 0 {
				r.Use(httprate.Limit(deps.RateLimitPerMinute, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)))
			}
			r.Post("/transactions", h.submitTransaction)
			r.Delete("/transactions", h.clearTransactions)
			r.Delete("/transactions/{id}", h.deleteTransaction)
			r.Post("/transactions/load-sample", h.loadSample)
		})

		r.Get("/transactions", h.listTransactions)
		r.Get("/dashboard", h.report("dashboard", h.dashboard))
		r.Get("/trial-balance", h.report("trial-balance", h.trialBalance))
		r.Get("/balance-sheet", h.report("balance-sheet", h.balanceSheet))
		r.Get("/income-statement", h.report("income-statement", h.incomeStatement))
		r.Get("/financial-ratios", h.report("financial-ratios", h.financialRatios))
		r.Get("/financial-health-score", h.report("financial-health-score", h.healthScore))
		r.Get("/reconciliation", h.report("reconciliation", h.reconciliation))

		r.Get("/export/transactions", h.exportTransactions)
		r.Get("/export/balance-sheet", h.statementExport("balance_sheet.csv", deps.Ledger.WriteBalanceSheetCSV))
		r.Get("/export/income-statement", h.statementExport("income_statement.csv", deps.Ledger.WriteIncomeStatementCSV))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		problem(w, http.StatusNotFound, "Not Found", r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		problem(w, http.StatusMethodNotAllowed, "Method Not Allowed", r.Method+" "+r.URL.Path)
	})

	return r
}
