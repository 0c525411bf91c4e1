package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/sheikh-saqib/ledger-reporting/internal/classifier"
	"github.com/sheikh-saqib/ledger-reporting/internal/ledger"
	"github.com/sheikh-saqib/ledger-reporting/internal/storage/memory"
	"github.com/sheikh-saqib/ledger-reporting/internal/storage/postgres"
)

var (
	dsn       = flag.String("dsn", os.Getenv("PG_DSN"), "Postgres DSN of the ledger journal")
	rulesFile = flag.String("rules", os.Getenv("CLASSIFIER_FILE"), "YAML account classification rules; empty uses the built-in chart")
)

var errNoJournal = errors.New("no journal configured, set -dsn or PG_DSN")

var stdout io.Writer = os.Stdout

// openLedger builds a ledger restored from the journal. The returned close
// func releases the database connection.
var openLedger = func(ctx context.Context, requireJournal bool) (*ledger.Ledger, func(), error) {
	rules := classifier.Classifier(classifier.Defaults())
	if *rulesFile != "" {
		var err error
		if rules, err = classifier.LoadFile(*rulesFile); err != nil {
			return nil, nil, err
		}
	}

	l := ledger.NewLedger(memory.NewMemoryLedgerStore(), rules)
	if *dsn == "" {
		if requireJournal {
			return nil, nil, errNoJournal
		}
		return l, func() {}, nil
	}

	db, err := postgres.Open(ctx, *dsn)
	if err != nil {
		return nil, nil, err
	}
	journal := postgres.NewPostgresJournal(db)
	if err := journal.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	l.WithJournal(journal)
	if err := l.Restore(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return l, func() { _ = db.Close() }, nil
}
