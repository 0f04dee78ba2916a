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

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	asset string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "show invested amounts per calendar month" }
func (*monthlyCmd) Usage() string {
	return `painel monthly [-a <asset>]

  Sums purchase amounts per calendar month, over the whole portfolio or a
  single asset.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Restrict to one asset. Defaults to the whole portfolio.")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	contributions := carteira.MonthlyContributions(ledger, c.asset)
	printMarkdown(renderer.MonthlyMarkdown(c.asset, contributions))
	return subcommands.ExitSuccess
}
