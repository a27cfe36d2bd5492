package rcheckbook

import (
	"sort"
	"strings"

	"github.com/bryceac/rcheckbook/date"
	"github.com/shopspring/decimal"
)

// openingBalanceCategory tags the record that seeds the account. It is a
// starting balance, not a period flow, so the summary reports it separately
// and keeps it out of the per-category breakdown.
const openingBalanceCategory = "Opening Balance"

// CategoryTotal is the signed flow of one category over the report window:
// deposits minus withdrawals.
type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// Summary aggregates the ledger over a trailing period window.
type Summary struct {
	Period date.Period

	// Opening is the running balance at the window's Opening Balance record,
	// or at its first record when none is tagged.
	Opening decimal.Decimal
	// Closing is the running balance at the last record in the window.
	Closing decimal.Decimal

	Income          decimal.Decimal // sum of deposit amounts in the window
	Expenditure     decimal.Decimal // sum of withdrawal amounts in the window
	ReconciledNet   decimal.Decimal // signed net of reconciled records
	UnreconciledNet decimal.Decimal // signed net of unreconciled records

	// Categories holds the per-category signed totals, alphabetical,
	// Opening Balance excluded.
	Categories []CategoryTotal

	// Empty is true when no record falls inside the window.
	Empty bool
}

// Summarize aggregates the ledger's records falling in the period window
// anchored at today. Categories come from the registry, so a category with no
// activity in the window still reports a zero flow.
func Summarize(ledger *Ledger, categories []string, period date.Period, today date.Date) *Summary {
	s := &Summary{Period: period}

	window := ledger
	if r, bounded := period.RangeEnding(today); bounded {
		window = ledger.Filter(func(rec Record) bool { return r.Contains(rec.Transaction.Date) })
	}
	records := window.Records()
	if len(records) == 0 {
		s.Empty = true
		return s
	}

	// Opening balance: the balance at the tagged record, else at the first
	// record of the window. Balances are computed against the full ledger,
	// not the filtered view, so a window that starts mid-history still opens
	// at the true running balance.
	openingID := records[0].ID
	for _, rec := range records {
		if strings.EqualFold(rec.Transaction.DisplayCategory(), openingBalanceCategory) {
			openingID = rec.ID
			break
		}
	}
	s.Opening, _ = ledger.BalanceAt(openingID)
	s.Closing, _ = ledger.BalanceAt(records[len(records)-1].ID)

	for _, rec := range records {
		t := rec.Transaction
		if t.Type == Deposit {
			s.Income = s.Income.Add(t.Amount)
		} else {
			s.Expenditure = s.Expenditure.Add(t.Amount)
		}
		if t.Reconciled {
			s.ReconciledNet = s.ReconciledNet.Add(t.SignedAmount())
		} else {
			s.UnreconciledNet = s.UnreconciledNet.Add(t.SignedAmount())
		}
	}

	for _, category := range categories {
		if strings.EqualFold(category, openingBalanceCategory) {
			continue
		}
		var total decimal.Decimal
		for _, rec := range records {
			if strings.EqualFold(rec.Transaction.Category, category) {
				total = total.Add(rec.Transaction.SignedAmount())
			}
		}
		s.Categories = append(s.Categories, CategoryTotal{Name: category, Total: total})
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		return strings.ToLower(s.Categories[i].Name) < strings.ToLower(s.Categories[j].Name)
	})
	return s
}
