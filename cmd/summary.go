package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vlourenco/carteira"
	"github.com/vlourenco/carteira/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "value the portfolio and record today's snapshot" }
func (*summaryCmd) Usage() string {
	return `painel summary [-d <date>]

  Values every position against current quotes, classifies dividend
  entitlements, and records the day's total value in the history. Running it
  twice on the same day overwrites the day's snapshot.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date (YYYY-MM-DD). Defaults to today.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		c.date = carteira.Today().String()
	}
	day, err := carteira.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := carteira.NewPortfolioReport(ledger, marketData(), day)
	printMarkdown(renderer.SummaryMarkdown(report))

	// One snapshot per run, overwriting the day's previous value.
	history, err := loadHistory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	history.Append(day, report.CurrentValue)
	if err := carteira.SaveHistory(*dataPath, history); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving history: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
