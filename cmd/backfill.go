package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vlourenco/carteira"
)

// backfillCmd holds the flags for the 'backfill' subcommand.
type backfillCmd struct {
	days int
}

func (*backfillCmd) Name() string     { return "backfill" }
func (*backfillCmd) Synopsis() string { return "reconstruct past daily values from price history" }
func (*backfillCmd) Usage() string {
	return `painel backfill [-days <n>]

  Rebuilds the total-value history for the last n days from the provider's
  closing prices, overwriting any values already recorded for those days.
`
}

func (c *backfillCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Number of past days to reconstruct.")
}

func (c *backfillCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -days must be positive")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	history, err := loadHistory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	to := carteira.Today()
	from := to.Add(-c.days + 1)
	n := carteira.Backfill(ledger, marketData(), history, from, to)

	if err := carteira.SaveHistory(*dataPath, history); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving history: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %d daily values between %s and %s\n", n, from, to)
	return subcommands.ExitSuccess
}
