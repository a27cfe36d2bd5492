package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	rcheckbook "github.com/bryceac/rcheckbook"
	"github.com/google/subcommands"
)

type importCmd struct {
	register string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import records from an external file" }
func (*importCmd) Usage() string {
	return `rcheckbook import [-f <register>] <file>

  Imports records from a .bcheck, .tsv, .qif, .ods, or .xlsx file; any other
  suffix is read as tab-separated. Rows that cannot be parsed are skipped
  with a warning. Importing the same file twice is idempotent: records are
  matched by id and never duplicated.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	registerFlag(f, &c.register)
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file to import")
		return subcommands.ExitUsageError
	}
	source := expandPath(f.Arg(0))

	records, err := rcheckbook.Normalize(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store, err := openStore(c.register)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	for _, record := range records {
		if err := store.Upsert(ctx, record); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Imported %d records from %s\n", len(records), source)
	return subcommands.ExitSuccess
}
