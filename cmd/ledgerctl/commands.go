package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/sheikh-saqib/ledger-reporting/internal/ledger"
)

// reports maps report names to their builders.
var reports = map[string]func(*ledger.Ledger) (any, bool){
	"trial-balance":    func(l *ledger.Ledger) (any, bool) { return l.TrialBalance() },
	"balance-sheet":    func(l *ledger.Ledger) (any, bool) { return l.BalanceSheet() },
	"income-statement": func(l *ledger.Ledger) (any, bool) { return l.IncomeStatement() },
	"ratios":           func(l *ledger.Ledger) (any, bool) { return l.FinancialRatios() },
	"health":           func(l *ledger.Ledger) (any, bool) { return l.HealthScore() },
	"reconciliation":   func(l *ledger.Ledger) (any, bool) { return l.Reconciliation() },
	"dashboard":        func(l *ledger.Ledger) (any, bool) { return l.Dashboard() },
}

const reportNames = "trial-balance|balance-sheet|income-statement|ratios|health|reconciliation|dashboard"

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print a financial report as JSON" }
func (*reportCmd) Usage() string {
	return `ledgerctl report <` + reportNames + `>

  Restores the ledger from the journal and prints the report.
`
}

func (*reportCmd) SetFlags(*flag.FlagSet) {}

func (*reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "expected one report name: %s\n", reportNames)
		return subcommands.ExitUsageError
	}
	build, ok := reports[f.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown report %q, expected one of %s\n", f.Arg(0), strings.ReplaceAll(reportNames, "|", ", "))
		return subcommands.ExitUsageError
	}

	l, closeFn, err := openLedger(ctx, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	report, ok := build(l)
	if !ok {
		fmt.Fprintln(stdout, "No transactions available")
		return subcommands.ExitSuccess
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print the journal entries as CSV" }
func (*exportCmd) Usage() string {
	return `ledgerctl export

  Prints every live entry as date,account,debit,credit,description.
`
}

func (*exportCmd) SetFlags(*flag.FlagSet) {}

func (*exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, closeFn, err := openLedger(ctx, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	if err := l.WriteCSV(stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "replace the journal contents with the sample transactions" }
func (*seedCmd) Usage() string {
	return `ledgerctl -dsn <postgres-dsn> seed

  Clears the ledger and posts the sample transactions to the journal.
`
}

func (*seedCmd) SetFlags(*flag.FlagSet) {}

func (*seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, closeFn, err := openLedger(ctx, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	count, err := l.LoadSample(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "seeded %d entries\n", count)
	return subcommands.ExitSuccess
}
