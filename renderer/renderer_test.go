package renderer

import (
	"strings"
	"testing"
	"time"

	rcheckbook "github.com/bryceac/rcheckbook"
	"github.com/bryceac/rcheckbook/date"
	"github.com/shopspring/decimal"
)

func TestRecords(t *testing.T) {
	ledger := rcheckbook.NewLedger(
		rcheckbook.Record{
			ID: "FF04C3DC",
			Transaction: rcheckbook.Transaction{
				Date:        date.New(2021, time.July, 8),
				CheckNumber: 1260,
				Category:    "Opening Balance",
				Vendor:      "Sam Hill Credit Union",
				Memo:        "opening balance",
				Amount:      decimal.NewFromInt(500),
				Type:        rcheckbook.Deposit,
				Reconciled:  true,
			},
		},
		rcheckbook.Record{
			ID: "1422CBC6",
			Transaction: rcheckbook.Transaction{
				Date:   date.New(2021, time.July, 8),
				Vendor: "Fake Street Electronics",
				Memo:   "head set",
				Amount: decimal.NewFromInt(200),
				Type:   rcheckbook.Withdrawal,
			},
		},
	)

	got := Records(ledger)

	for _, want := range []string{
		"Check #",
		"Balance",
		"FF04C3DC",
		"Sam Hill Credit Union",
		"+$500.00",
		"-$200.00",
		"$300.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("listing missing %q:\n%s", want, got)
		}
	}
}

func TestRecordsUncategorized(t *testing.T) {
	ledger := rcheckbook.NewLedger(rcheckbook.Record{
		ID: "A",
		Transaction: rcheckbook.Transaction{
			Date:   date.New(2024, time.May, 1),
			Vendor: "Acme",
			Amount: decimal.NewFromInt(5),
			Type:   rcheckbook.Withdrawal,
		},
	})
	if got := Records(ledger); !strings.Contains(got, "Uncategorized") {
		t.Errorf("record without a category should list as Uncategorized:\n%s", got)
	}
}

func TestSummary(t *testing.T) {
	s := &rcheckbook.Summary{
		Period:      date.All,
		Opening:     decimal.NewFromInt(100),
		Closing:     decimal.NewFromInt(90),
		Income:      decimal.NewFromInt(120),
		Expenditure: decimal.NewFromInt(30),
		Categories: []rcheckbook.CategoryTotal{
			{Name: "Salary", Total: decimal.NewFromInt(20)},
			{Name: "Utilities", Total: decimal.NewFromInt(-30)},
		},
	}

	got := Summary(s)

	for _, want := range []string{
		"# Summary",
		"## Categories",
		"## Totals",
		"$100.00",
		"$90.00",
		"+$20.00",
		"-$30.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryTitles(t *testing.T) {
	tests := []struct {
		period date.Period
		want   string
	}{
		{date.All, "# Summary"},
		{date.Week, "# WTD Report"},
		{date.Month, "# MTD Report"},
		{date.Quarter, "# QTD Report"},
		{date.HalfYear, "# 6 Month Report"},
		{date.Year, "# YTD Report"},
	}
	for _, tc := range tests {
		got := Summary(&rcheckbook.Summary{Period: tc.period, Empty: true})
		if !strings.Contains(got, tc.want) {
			t.Errorf("period %v title: got\n%s\nwant it to contain %q", tc.period, got, tc.want)
		}
		if !strings.Contains(got, "No transactions in this period.") {
			t.Errorf("empty report should say so:\n%s", got)
		}
	}
}
