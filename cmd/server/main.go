package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikh-saqib/ledger-reporting/internal/api"
	"github.com/sheikh-saqib/ledger-reporting/internal/cache"
	"github.com/sheikh-saqib/ledger-reporting/internal/classifier"
	"github.com/sheikh-saqib/ledger-reporting/internal/config"
	"github.com/sheikh-saqib/ledger-reporting/internal/events/kafka"
	"github.com/sheikh-saqib/ledger-reporting/internal/ledger"
	"github.com/sheikh-saqib/ledger-reporting/internal/observability"
	"github.com/sheikh-saqib/ledger-reporting/internal/storage/memory"
	"github.com/sheikh-saqib/ledger-reporting/internal/storage/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)

	rules, err := loadClassifier(cfg.ClassifierFile)
	if err != nil {
		logger.Error("load classifier", slog.Any("error", err))
		os.Exit(1)
	}

	ledgerService := ledger.NewLedger(memory.NewMemoryLedgerStore(), rules)
	ledgerService.WithLogger(logger)

	if cfg.PGDSN != "" {
		db, err := postgres.Open(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("connect postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer db.Close()

		journal := postgres.NewPostgresJournal(db)
		if err := journal.Migrate(ctx); err != nil {
			logger.Error("migrate journal", slog.Any("error", err))
			os.Exit(1)
		}
		ledgerService.WithJournal(journal)
		if err := ledgerService.Restore(ctx); err != nil {
			logger.Error("restore ledger", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("ledger restored", slog.Int("entries", len(ledgerService.ListEntries())))
	}

	var reportCache *cache.ReportCache
	if cfg.RedisAddr != "" {
		client, err := cache.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, reports are not cached", slog.Any("error", err))
		} else {
			defer func() {
				if err := client.Close(); err != nil {
					logger.Warn("redis close", slog.Any("error", err))
				}
			}()
			reportCache = cache.New(client, cfg.ReportCacheTTL)
		}
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Warn("kafka close", slog.Any("error", err))
			}
		}()
		ledgerService.WithPublisher(publisher)
	}

	router := api.NewRouter(api.Dependencies{
		Logger:             logger,
		Ledger:             ledgerService,
		Cache:              reportCache,
		Metrics:            observability.NewMetrics(),
		Currency:           cfg.ReportCurrency,
		Production:         cfg.IsProduction(),
		RequestTimeout:     cfg.AppRequestTimeout,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		MaxBodyBytes:       cfg.MaxBodyBytes,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("ledger_id", ledgerService.ID().String()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

func loadClassifier(path string) (classifier.Classifier, error) {
	if path == "" {
		return classifier.Defaults(), nil
	}
	return classifier.LoadFile(path)
}
