package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	rcheckbook "github.com/bryceac/rcheckbook"
	"github.com/bryceac/rcheckbook/date"
	"github.com/bryceac/rcheckbook/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	register string
	period   string
	date     string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a period report of the register" }
func (*summaryCmd) Usage() string {
	return `rcheckbook summary [-p <period>] [-d <date>] [-f <register>]

  Reports opening and closing balances, per-category flows, income,
  expenditure, and reconciled/unreconciled nets over the trailing period
  (all, week, month, quarter, half-year, year) anchored at the given date.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	registerFlag(f, &c.register)
	f.StringVar(&c.period, "p", "all", "Report period: all, week, month, quarter, half-year, or year")
	f.StringVar(&c.date, "d", "", "Anchor date for the period (defaults to today)")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	today := date.Today()
	if c.date != "" {
		if today, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := openStore(c.register)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	ledger, err := store.Ledger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	categories, err := store.Categories(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	summary := rcheckbook.Summarize(ledger, categories, period, today)
	printMarkdown(renderer.Summary(summary))
	return subcommands.ExitSuccess
}
