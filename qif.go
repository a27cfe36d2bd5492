package rcheckbook

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bryceac/rcheckbook/date"
	"github.com/shopspring/decimal"
)

// qifDateFormat is the month/day/full-year layout QIF files carry.
const qifDateFormat = "1/2/2006"

// decodeQIF reads a Quicken interchange file. Each entry is a run of
// single-letter field lines terminated by "^". The status flag maps to the
// reconciled bit, and the signed amount maps to the direction enum: positive
// is a deposit, zero or negative a withdrawal, with the magnitude stored as
// the absolute value. Entries that fail to parse are skipped with a warning.
func decodeQIF(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)

	var (
		records []Record
		t       Transaction
		entry   int
		bad     error
	)
	reset := func() {
		t = Transaction{Type: Withdrawal}
		bad = nil
	}
	reset()

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if line == "^" {
			entry++
			if bad != nil {
				slog.Warn("skipping unparseable entry", "format", "qif", "entry", entry, "reason", bad)
			} else if !t.Date.IsZero() {
				records = append(records, NewRecord(t))
			}
			reset()
			continue
		}

		code, value := line[:1], strings.TrimSpace(line[1:])
		switch code {
		case "D":
			on, err := parseQIFDate(value)
			if err != nil {
				bad = err
				continue
			}
			t.Date = on
		case "T", "U":
			amount, err := decimal.NewFromString(strings.ReplaceAll(value, ",", ""))
			if err != nil {
				bad = fmt.Errorf("bad amount %q", value)
				continue
			}
			if amount.IsPositive() {
				t.Type = Deposit
			} else {
				t.Type = Withdrawal
			}
			t.Amount = amount.Abs()
		case "N":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				t.CheckNumber = n
			}
		case "P":
			t.Vendor = value
		case "M":
			t.Memo = value
		case "L":
			t.Category = strings.Trim(value, "[]")
		case "C":
			switch value {
			case "*", "X", "R", "c":
				t.Reconciled = true
			default:
				t.Reconciled = false
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func parseQIFDate(value string) (date.Date, error) {
	// Quicken writes post-1999 dates with an apostrophe before a two-digit
	// year, e.g. 1/5'24 for 2024-01-05.
	value = strings.ReplaceAll(value, "'", "/")
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return date.Date{}, fmt.Errorf("%w: got %q", ErrInvalidDateFormat, value)
	}
	year := parts[2]
	if len(year) == 2 {
		year = "20" + year
	}
	on, err := date.Parse(fmt.Sprintf("%s-%s-%s", year, parts[0], parts[1]))
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: got %q", ErrInvalidDateFormat, value)
	}
	return on, nil
}

// encodeQIF writes records as a Quicken bank account export. The balance
// column has no QIF representation, so this variant is view-only.
func encodeQIF(w io.Writer, records []Record) error {
	writer := bufio.NewWriter(w)
	fmt.Fprintln(writer, "!Type:Bank")
	for _, rec := range records {
		t := rec.Transaction
		fmt.Fprintf(writer, "D%s\n", t.Date.Format(qifDateFormat))
		fmt.Fprintf(writer, "T%s\n", t.SignedAmount().StringFixed(2))
		if t.CheckNumber > 0 {
			fmt.Fprintf(writer, "N%d\n", t.CheckNumber)
		}
		fmt.Fprintf(writer, "P%s\n", t.Vendor)
		if t.Category != "" {
			fmt.Fprintf(writer, "L%s\n", t.Category)
		}
		if t.Memo != "" {
			fmt.Fprintf(writer, "M%s\n", t.Memo)
		}
		if t.Reconciled {
			fmt.Fprintln(writer, "C*")
		}
		fmt.Fprintln(writer, "^")
	}
	return writer.Flush()
}
