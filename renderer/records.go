// Package renderer renders register listings and reports as markdown.
package renderer

import (
	"bytes"
	"strconv"

	rcheckbook "github.com/bryceac/rcheckbook"
	md "github.com/nao1215/markdown"
)

// Records renders the sorted records as a markdown table with the derived
// running balance in the last column.
func Records(ledger *rcheckbook.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	records := ledger.Records()
	balances := ledger.RunningBalances()

	table := md.TableSet{
		Header: []string{"ID", "Date", "Check #", "Category", "Vendor", "Memo", "R", "Amount", "Balance"},
	}
	for i, rec := range records {
		t := rec.Transaction
		check := ""
		if t.CheckNumber > 0 {
			check = strconv.Itoa(t.CheckNumber)
		}
		reconciled := ""
		if t.Reconciled {
			reconciled = "Y"
		}
		table.Rows = append(table.Rows, []string{
			rec.ID,
			t.Date.String(),
			check,
			t.DisplayCategory(),
			t.Vendor,
			t.Memo,
			reconciled,
			rcheckbook.DisplaySignedAmount(t.SignedAmount()),
			rcheckbook.DisplayAmount(balances[i]),
		})
	}
	doc.Table(table)

	return doc.String()
}
