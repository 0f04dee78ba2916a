package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vlourenco/carteira"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	date     string
	asset    string
	quantity float64
	price    float64
	memo     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase in the ledger" }
func (*buyCmd) Usage() string {
	return `painel buy -a <asset> -q <quantity> -p <unit-price> [-d <date>] [-m <memo>]

  Appends a purchase to the ledger. The quantity may be fractional (crypto).
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trade date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&c.asset, "a", "", "Asset ticker (e.g. PETR4.SA, BTC-USD).")
	f.Float64Var(&c.quantity, "q", 0, "Quantity purchased.")
	f.Float64Var(&c.price, "p", 0, "Unit price paid, in BRL.")
	f.StringVar(&c.memo, "m", "", "Optional memo.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		c.date = carteira.Today().String()
	}
	day, err := carteira.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing trade date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	buy, err := ledger.Validate(carteira.NewBuy(day, c.memo, c.asset, carteira.Q(c.quantity), carteira.M(c.price)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger.Append(buy)

	if err := carteira.SaveLedger(*dataPath, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded purchase of %s %s at %s\n", carteira.Q(c.quantity), c.asset, carteira.M(c.price).PerShareString())
	return subcommands.ExitSuccess
}
