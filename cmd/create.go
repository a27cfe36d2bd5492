package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type createCmd struct {
	register string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create an empty register" }
func (*createCmd) Usage() string {
	return `rcheckbook create [-f <register>]

  Creates an empty register database at the given path, including any
  missing parent directories.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	registerFlag(f, &c.register)
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore(c.register)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	fmt.Printf("Register ready at %s\n", store.Path())
	return subcommands.ExitSuccess
}
