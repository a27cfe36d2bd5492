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

type addCmd struct {
	register    string
	date        string
	checkNumber int
	category    string
	vendor      string
	memo        string
	amount      string
	txType      string
	reconciled  bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a transaction to the register" }
func (*addCmd) Usage() string {
	return `rcheckbook add -vendor <vendor> [-amount <amount>] [-type <deposit|withdrawal>] [-date <date>] [-check <n>] [-category <name>] [-memo <text>] [-r] [-f <register>]

  Adds a new record to the register. Unseen categories are registered on
  first use.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	registerFlag(f, &c.register)
	f.StringVar(&c.date, "date", "", "Transaction date (defaults to today)")
	f.IntVar(&c.checkNumber, "check", 0, "Check number")
	f.StringVar(&c.category, "category", "", "Category name")
	f.StringVar(&c.vendor, "vendor", "", "Payee or payer")
	f.StringVar(&c.memo, "memo", "", "Free-form note")
	f.StringVar(&c.amount, "amount", "0", "Transaction amount (non-negative)")
	f.StringVar(&c.txType, "type", "withdrawal", "Transaction type: deposit or withdrawal")
	f.BoolVar(&c.reconciled, "r", false, "Mark the transaction reconciled")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := date.Today()
	if c.date != "" {
		var err error
		if on, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	txType, err := rcheckbook.ParseTransactionType(c.txType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	record := rcheckbook.NewRecord(rcheckbook.Transaction{
		Date:        on,
		CheckNumber: c.checkNumber,
		Category:    c.category,
		Vendor:      c.vendor,
		Memo:        c.memo,
		Amount:      amount,
		Type:        txType,
		Reconciled:  c.reconciled,
	})

	store, err := openStore(c.register)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.Add(ctx, record); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added record %s\n", record.ID)
	return subcommands.ExitSuccess
}
