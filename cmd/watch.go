package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"
	"github.com/vlourenco/carteira"
)

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	schedule string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "record a daily snapshot on a schedule" }
func (*watchCmd) Usage() string {
	return `painel watch [-at <cron-spec>]

  Stays up and records the portfolio's total value on the given cron
  schedule. The default fires at 18:00 on weekdays, after the B3 close.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.schedule, "at", "0 18 * * 1-5", "Cron schedule for the snapshot.")
}

func (c *watchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scheduler := cron.New()
	_, err := scheduler.AddFunc(c.schedule, func() {
		if err := recordSnapshot(); err != nil {
			log.Printf("snapshot failed: %v", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid schedule %q: %v\n", c.schedule, err)
		return subcommands.ExitUsageError
	}

	scheduler.Start()
	log.Printf("watching, schedule %q", c.schedule)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	<-scheduler.Stop().Done() // let a running snapshot finish
	return subcommands.ExitSuccess
}

// recordSnapshot values the portfolio and stores today's total, overwriting
// any value already recorded for the day.
func recordSnapshot() error {
	ledger, err := loadLedger()
	if err != nil {
		return err
	}
	history, err := loadHistory()
	if err != nil {
		return err
	}

	today := carteira.Today()
	report := carteira.NewPortfolioReport(ledger, marketData(), today)
	history.Append(today, report.CurrentValue)
	if err := carteira.SaveHistory(*dataPath, history); err != nil {
		return err
	}
	log.Printf("recorded %s: %s", today, report.CurrentValue)
	return nil
}
