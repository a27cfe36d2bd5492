package rcheckbook

import (
	"strings"
	"testing"
	"time"

	"github.com/bryceac/rcheckbook/date"
	"github.com/shopspring/decimal"
)

func record(id string, day date.Date, txType TransactionType, amount float64, category string) Record {
	return Record{ID: id, Transaction: Transaction{
		Date:     day,
		Category: category,
		Vendor:   "Vendor " + id,
		Amount:   decimal.NewFromFloat(amount),
		Type:     txType,
	}}
}

// The record fixtures mirror a small checkbook: an opening deposit, a utility
// bill, and a pay check.
func testRecords() []Record {
	return []Record{
		record("A", date.New(2024, time.January, 1), Deposit, 100, "Opening Balance"),
		record("B", date.New(2024, time.January, 5), Withdrawal, 30, "Utilities"),
		record("C", date.New(2024, time.January, 10), Deposit, 20, "Salary"),
	}
}

func TestLedgerSortsByDate(t *testing.T) {
	records := testRecords()
	// Append out of order; the sorted view must come back chronological.
	ledger := NewLedger(records[2], records[0], records[1])

	var got []string
	for _, r := range ledger.Records() {
		got = append(got, r.ID)
	}
	if strings.Join(got, "") != "ABC" {
		t.Errorf("sorted order = %v, want [A B C]", got)
	}
}

func TestLedgerStableSortKeepsInsertionOrderOnTies(t *testing.T) {
	day := date.New(2024, time.March, 1)
	ledger := NewLedger(
		record("FIRST", day, Deposit, 1, ""),
		record("SECOND", day, Deposit, 2, ""),
		record("THIRD", day, Deposit, 3, ""),
	)
	var got []string
	for _, r := range ledger.Records() {
		got = append(got, r.ID)
	}
	if got[0] != "FIRST" || got[1] != "SECOND" || got[2] != "THIRD" {
		t.Errorf("same-day records reordered: %v", got)
	}
}

func TestBalanceAt(t *testing.T) {
	ledger := NewLedger(testRecords()...)

	testCases := []struct {
		id   string
		want float64
	}{
		{id: "A", want: 100},
		{id: "B", want: 70},
		{id: "C", want: 90},
		{id: "c", want: 90}, // id lookup is case-insensitive
	}
	for _, tc := range testCases {
		got, err := ledger.BalanceAt(tc.id)
		if err != nil {
			t.Errorf("BalanceAt(%q) returned an unexpected error: %v", tc.id, err)
			continue
		}
		if !got.Equal(decimal.NewFromFloat(tc.want)) {
			t.Errorf("BalanceAt(%q) = %s, want %v", tc.id, got, tc.want)
		}
	}

	if _, err := ledger.BalanceAt("MISSING"); err != ErrNotFound {
		t.Errorf("BalanceAt(missing) error = %v, want ErrNotFound", err)
	}
}

func TestBalanceMonotonicForDeposits(t *testing.T) {
	ledger := NewLedger(
		record("A", date.New(2024, time.January, 1), Deposit, 10, ""),
		record("B", date.New(2024, time.January, 2), Deposit, 0, ""),
		record("C", date.New(2024, time.January, 3), Deposit, 5, ""),
	)
	balances := ledger.RunningBalances()
	for i := 1; i < len(balances); i++ {
		if balances[i].LessThan(balances[i-1]) {
			t.Errorf("balance decreased at %d: %s -> %s", i, balances[i-1], balances[i])
		}
	}
}

func TestRecordBefore(t *testing.T) {
	ledger := NewLedger(testRecords()...)

	if _, ok := ledger.RecordBefore("A"); ok {
		t.Error("RecordBefore(first) should report no predecessor")
	}
	prev, ok := ledger.RecordBefore("C")
	if !ok || prev.ID != "B" {
		t.Errorf("RecordBefore(C) = %v, %v, want record B", prev.ID, ok)
	}
}

func TestLedgerGet(t *testing.T) {
	ledger := NewLedger(testRecords()...)
	got, err := ledger.Get("b")
	if err != nil {
		t.Fatalf("Get() returned an unexpected error: %v", err)
	}
	if got.ID != "B" {
		t.Errorf("Get(\"b\") = %s, want B", got.ID)
	}
	if _, err := ledger.Get("missing"); err != ErrNotFound {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}
