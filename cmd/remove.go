package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	rcheckbook "github.com/bryceac/rcheckbook"
	"github.com/google/subcommands"
)

type removeCmd struct {
	register string
	id       string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a record from the register" }
func (*removeCmd) Usage() string {
	return `rcheckbook remove -id <id> [-f <register>]

  Deletes the record with the given id. The id match is case-insensitive.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	registerFlag(f, &c.register)
	f.StringVar(&c.id, "id", "", "Record id to remove")
}

func (c *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	store, err := openStore(c.register)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	// Removal of an absent id is a store-level no-op; look it up first so the
	// user learns whether anything actually happened.
	if _, err := store.Get(ctx, c.id); errors.Is(err, rcheckbook.ErrNotFound) {
		fmt.Printf("No record with id %s\n", c.id)
		return subcommands.ExitSuccess
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := store.Remove(ctx, c.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed record %s\n", c.id)
	return subcommands.ExitSuccess
}
