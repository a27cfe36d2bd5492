package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	rcheckbook "github.com/bryceac/rcheckbook"
	"github.com/google/subcommands"
)

type exportCmd struct {
	register   string
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the register to an external file" }
func (*exportCmd) Usage() string {
	return `rcheckbook export -o <file> [-f <register>]

  Writes the register's chronological view to the given file; the format is
  chosen by the file suffix (.bcheck, .tsv, .qif, .ods, .xlsx). Spreadsheet
  and tab-separated exports include the derived running balance column.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	registerFlag(f, &c.register)
	f.StringVar(&c.outputFile, "o", "", "Destination file")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.outputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required")
		return subcommands.ExitUsageError
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

	destination := expandPath(c.outputFile)
	if err := rcheckbook.Export(destination, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d records to %s\n", ledger.Len(), destination)
	return subcommands.ExitSuccess
}
