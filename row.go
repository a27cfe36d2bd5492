package rcheckbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bryceac/rcheckbook/date"
	"github.com/shopspring/decimal"
)

// The spreadsheet and tab-separated variants share one fixed column layout.
const (
	colID = iota
	colDate
	colCheckNumber
	colReconciled
	colCategory
	colVendor
	colMemo
	colCredit
	colDebit
	rowWidth = colDebit + 1
)

// rowHeader is the header row written by the spreadsheet exporters. Readers
// skip it when present.
var rowHeader = []string{"ID", "Date", "Check #", "Reconciled", "Category", "Vendor", "Memo", "Credit", "Debit", "Balance"}

func isHeaderRow(fields []string) bool {
	return len(fields) > colID && strings.EqualFold(strings.TrimSpace(fields[colID]), rowHeader[colID])
}

// recordFromRow converts one row into a canonical record. Amount direction is
// derived from which of the credit and debit columns is populated; a row
// populating both is a contradiction and is rejected. A row without an id
// gets a fresh one.
func recordFromRow(fields []string) (Record, error) {
	if len(fields) < rowWidth {
		return Record{}, fmt.Errorf("row has %d columns, want at least %d", len(fields), rowWidth)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var t Transaction

	d, err := date.Parse(fields[colDate])
	if err != nil {
		return Record{}, fmt.Errorf("%w: got %q", ErrInvalidDateFormat, fields[colDate])
	}
	t.Date = d

	if v := fields[colCheckNumber]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Record{}, fmt.Errorf("bad check number %q", v)
		}
		t.CheckNumber = n
	}

	t.Reconciled = strings.EqualFold(fields[colReconciled], "y")
	t.Category = fields[colCategory]
	t.Vendor = fields[colVendor]
	t.Memo = fields[colMemo]

	credit, debit := fields[colCredit], fields[colDebit]
	if credit != "" && debit != "" {
		return Record{}, ErrAmbiguousTransactionType
	}
	switch {
	case credit != "":
		amount, err := decimal.NewFromString(credit)
		if err != nil {
			return Record{}, fmt.Errorf("bad credit amount %q", credit)
		}
		// A populated zero credit is still a withdrawal of nothing.
		if amount.IsZero() {
			t.Type = Withdrawal
		} else {
			t.Type = Deposit
		}
		t.Amount = amount.Abs()
	case debit != "":
		amount, err := decimal.NewFromString(debit)
		if err != nil {
			return Record{}, fmt.Errorf("bad debit amount %q", debit)
		}
		t.Type = Withdrawal
		t.Amount = amount.Abs()
	default:
		t.Type = Withdrawal
		t.Amount = decimal.Zero
	}

	id := fields[colID]
	if id == "" {
		id = NewID()
	}
	return Record{ID: id, Transaction: t}, nil
}

// rowFromRecord renders a record in the shared column layout, with the
// derived running balance as the trailing column.
func rowFromRecord(rec Record, balance decimal.Decimal) []string {
	fields := make([]string, rowWidth+1)
	fields[colID] = rec.ID
	fields[colDate] = rec.Transaction.Date.String()
	if rec.Transaction.CheckNumber > 0 {
		fields[colCheckNumber] = strconv.Itoa(rec.Transaction.CheckNumber)
	}
	if rec.Transaction.Reconciled {
		fields[colReconciled] = "Y"
	} else {
		fields[colReconciled] = "N"
	}
	fields[colCategory] = rec.Transaction.Category
	fields[colVendor] = rec.Transaction.Vendor
	fields[colMemo] = rec.Transaction.Memo
	amount := rec.Transaction.Amount.StringFixed(2)
	if rec.Transaction.Type == Deposit {
		fields[colCredit] = amount
	} else {
		fields[colDebit] = amount
	}
	fields[rowWidth] = balance.StringFixed(2)
	return fields
}
