package renderer

import (
	"bytes"

	rcheckbook "github.com/bryceac/rcheckbook"
	"github.com/bryceac/rcheckbook/date"
	md "github.com/nao1215/markdown"
)

func summaryTitle(p date.Period) string {
	switch p {
	case date.Week:
		return "WTD Report"
	case date.Month:
		return "MTD Report"
	case date.Quarter:
		return "QTD Report"
	case date.HalfYear:
		return "6 Month Report"
	case date.Year:
		return "YTD Report"
	default:
		return "Summary"
	}
}

// Summary renders a period report: opening and closing balances, the
// per-category flows, and the period totals.
func Summary(s *rcheckbook.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(summaryTitle(s.Period))
	if s.Empty {
		doc.PlainText("No transactions in this period.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Header: []string{"", "Balance"},
		Rows: [][]string{
			{"Opening", rcheckbook.DisplayAmount(s.Opening)},
			{"Closing", rcheckbook.DisplayAmount(s.Closing)},
		},
	})

	if len(s.Categories) > 0 {
		doc.H2("Categories")
		table := md.TableSet{Header: []string{"Category", "Total"}}
		for _, c := range s.Categories {
			table.Rows = append(table.Rows, []string{c.Name, rcheckbook.DisplaySignedAmount(c.Total)})
		}
		doc.Table(table)
	}

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Income", rcheckbook.DisplayAmount(s.Income)},
			{"Expenditure", rcheckbook.DisplayAmount(s.Expenditure)},
			{"Reconciled", rcheckbook.DisplaySignedAmount(s.ReconciledNet)},
			{"Unreconciled", rcheckbook.DisplaySignedAmount(s.UnreconciledNet)},
		},
	})

	return doc.String()
}
