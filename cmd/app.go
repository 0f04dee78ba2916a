// Package cmd implements the CLI application to manage the portfolio.
package cmd

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/vlourenco/carteira"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&dividendsCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&backfillCmd{}, "maintenance")
	c.Register(&watchCmd{}, "maintenance")

	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data", defaultDataPath(), "Path to the data folder holding the ledger and the value history")

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".carteira")
}

// loadLedger reads the ledger from the app data folder.
func loadLedger() (*carteira.Ledger, error) {
	return carteira.LoadLedger(*dataPath)
}

// loadHistory reads the value history from the app data folder.
func loadHistory() (*carteira.History, error) {
	return carteira.LoadHistory(*dataPath)
}

// marketData returns the live provider. Commands that only read the ledger
// never call it, so they work offline.
func marketData() carteira.MarketData {
	return carteira.NewBrapiProvider()
}
