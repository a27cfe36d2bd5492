package rcheckbook

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Ledger is an in-memory view over a set of records.
//
// In a Ledger records are always in chronological order. The sort is stable:
// records on the same day keep the order in which they were appended, which
// for a store-loaded ledger is the storage (insertion) order. That sorted
// order is the canonical one for balance computation and display; it is
// derived here and never persisted.
type Ledger struct {
	records []Record
}

// NewLedger creates a ledger over the given records.
func NewLedger(records ...Record) *Ledger {
	l := &Ledger{}
	l.Append(records...)
	return l
}

// Append appends records to this ledger and maintains the chronological order.
func (l *Ledger) Append(records ...Record) {
	l.records = append(l.records, records...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// records on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].Transaction.Date.Before(l.records[j].Transaction.Date)
	})
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns the date-sorted records.
func (l *Ledger) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Get returns the record with the given id, matched case-insensitively.
func (l *Ledger) Get(id string) (Record, error) {
	i := l.index(id)
	if i < 0 {
		return Record{}, ErrNotFound
	}
	return l.records[i], nil
}

// index returns the position of the record in the sorted view, or -1.
// An index computed on demand replaces any stored previous-record link, so
// edits can never leave a stale back-pointer.
func (l *Ledger) index(id string) int {
	for i, r := range l.records {
		if strings.EqualFold(r.ID, id) {
			return i
		}
	}
	return -1
}

// RecordBefore returns the record immediately preceding the given one in the
// sorted view, if any.
func (l *Ledger) RecordBefore(id string) (Record, bool) {
	i := l.index(id)
	if i <= 0 {
		return Record{}, false
	}
	return l.records[i-1], true
}

// BalanceAt computes the running balance as of and including the record with
// the given id: the sum of signed amounts of every record up to it in the
// sorted view. The balance is always recomputed from the full sorted history,
// never incrementally maintained, so backdated inserts, edits, and deletes
// can never leave it stale.
func (l *Ledger) BalanceAt(id string) (decimal.Decimal, error) {
	i := l.index(id)
	if i < 0 {
		return decimal.Decimal{}, ErrNotFound
	}
	var balance decimal.Decimal
	for _, r := range l.records[:i+1] {
		balance = balance.Add(r.Transaction.SignedAmount())
	}
	return balance, nil
}

// RunningBalances returns the running balance after each record of the sorted
// view, in the same order. Exporters use it to fill the derived balance
// column.
func (l *Ledger) RunningBalances() []decimal.Decimal {
	balances := make([]decimal.Decimal, len(l.records))
	var balance decimal.Decimal
	for i, r := range l.records {
		balance = balance.Add(r.Transaction.SignedAmount())
		balances[i] = balance
	}
	return balances
}

// Filter returns a new ledger containing the records accepted by the
// predicate, preserving order.
func (l *Ledger) Filter(accept func(Record) bool) *Ledger {
	out := &Ledger{}
	for _, r := range l.records {
		if accept(r) {
			out.records = append(out.records, r)
		}
	}
	return out
}
