package renderer

import (
	"bytes"
	"strconv"
	"time"

	"github.com/etnz/expense"
	md "github.com/nao1215/markdown"
)

// MonthlyMarkdown renders the month by month report to a markdown string.
func MonthlyMarkdown(r *expense.MonthlyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Report")

	if r.Count == 0 {
		doc.PlainText("No expenses to display.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Expenses", "Total"},
		Rows:   [][]string{},
	}
	for _, m := range r.Months {
		table.Rows = append(table.Rows, []string{
			monthLabel(m.Month),
			strconv.Itoa(m.Count),
			dollars(m.Total),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(strconv.Itoa(r.Count)),
		md.Bold(dollars(r.Total)),
	})
	doc.Table(table)

	return doc.String()
}

// monthLabel names a calendar month, with a stand-in for records whose date
// holds no readable month.
func monthLabel(m int) string {
	if m < 1 || m > 12 {
		return "(unknown)"
	}
	return time.Month(m).String()
}
