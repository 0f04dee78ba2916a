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

// dividendsCmd holds the flags for the 'dividends' subcommand.
type dividendsCmd struct {
	date string
	all  bool
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "list dividend entitlements" }
func (*dividendsCmd) Usage() string {
	return `painel dividends [-d <date>] [-all]

  Classifies every held asset's dividend events as provisioned, qualified or
  received. Received events are omitted unless -all is given.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date (YYYY-MM-DD). Defaults to today.")
	f.BoolVar(&c.all, "all", false, "Include already received dividends.")
}

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := carteira.NewDividendReport(ledger, marketData(), day, c.all)
	printMarkdown(renderer.DividendsMarkdown(report))
	return subcommands.ExitSuccess
}
