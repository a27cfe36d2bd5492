package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bryceac/rcheckbook/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	register string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the register's records with running balances" }
func (*listCmd) Usage() string {
	return `rcheckbook list [-f <register>]

  Lists every record in chronological order, with the running balance
  computed per record.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	registerFlag(f, &c.register)
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if ledger.Len() == 0 {
		fmt.Println("The register is empty.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Records(ledger))
	return subcommands.ExitSuccess
}
