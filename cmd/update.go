package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	rcheckbook "github.com/bryceac/rcheckbook"
	"github.com/bryceac/rcheckbook/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type updateCmd struct {
	register      string
	id            string
	date          string
	checkNumber   int
	category      string
	vendor        string
	memo          string
	amount        string
	txType        string
	reconciled    bool
	notReconciled bool
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update fields of an existing record" }
func (*updateCmd) Usage() string {
	return `rcheckbook update -id <id> [field flags] [-f <register>]

  Overwrites only the supplied fields of the record; everything else keeps
  its stored value. Use -r to mark the record reconciled, -not-r to clear
  the flag.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	registerFlag(f, &c.register)
	f.StringVar(&c.id, "id", "", "Record id to update")
	f.StringVar(&c.date, "date", "", "New transaction date")
	f.IntVar(&c.checkNumber, "check", 0, "New check number (0 clears it)")
	f.StringVar(&c.category, "category", "", "New category name")
	f.StringVar(&c.vendor, "vendor", "", "New payee or payer")
	f.StringVar(&c.memo, "memo", "", "New memo")
	f.StringVar(&c.amount, "amount", "", "New amount (non-negative)")
	f.StringVar(&c.txType, "type", "", "New transaction type: deposit or withdrawal")
	f.BoolVar(&c.reconciled, "r", false, "Mark the record reconciled")
	f.BoolVar(&c.notReconciled, "not-r", false, "Mark the record not reconciled")
}

// patch builds the partial update from the flags the user actually set, so an
// explicit zero value is distinguishable from an untouched field.
func (c *updateCmd) patch(f *flag.FlagSet) (rcheckbook.TransactionPatch, error) {
	var patch rcheckbook.TransactionPatch
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "date":
			var on date.Date
			if on, err = date.Parse(c.date); err == nil {
				patch.Date = &on
			}
		case "check":
			patch.CheckNumber = &c.checkNumber
		case "category":
			patch.Category = &c.category
		case "vendor":
			patch.Vendor = &c.vendor
		case "memo":
			patch.Memo = &c.memo
		case "amount":
			var amount decimal.Decimal
			if amount, err = decimal.NewFromString(c.amount); err == nil {
				patch.Amount = &amount
			}
		case "type":
			var txType rcheckbook.TransactionType
			if txType, err = rcheckbook.ParseTransactionType(c.txType); err == nil {
				patch.Type = &txType
			}
		}
	})
	if err != nil {
		return rcheckbook.TransactionPatch{}, err
	}
	reconciled := true
	if c.reconciled {
		patch.Reconciled = &reconciled
	} else if c.notReconciled {
		reconciled = false
		patch.Reconciled = &reconciled
	}
	return patch, nil
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	patch, err := c.patch(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore(c.register)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	record, err := store.Update(ctx, c.id, patch)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated record %s\n", record.ID)
	return subcommands.ExitSuccess
}
