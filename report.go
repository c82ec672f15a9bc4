package expense

import "github.com/shopspring/decimal"

// MonthlyTotal is the aggregation of one calendar month of expenses.
type MonthlyTotal struct {
	Month int // 1 to 12, or 0 for records whose date holds no readable month.
	Count int
	Total decimal.Decimal
}

// MonthlyReport aggregates a whole ledger month by month.
type MonthlyReport struct {
	Months []MonthlyTotal
	Count  int
	Total  decimal.Decimal
}

// SummaryJSON encodes a total as a single JSON object, together with the
// scope it was computed for when there is one.
func SummaryJSON(scope string, total decimal.Decimal) ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("scope", scope)
	w.Append("total", total)
	return w.MarshalJSON()
}

// NewMonthlyReport builds the month by month aggregation of the ledger.
//
// Months appear in calendar order, and only when they hold records. Records
// whose date holds no month between 1 and 12 are grouped last under month 0.
func NewMonthlyReport(ledger *Ledger) *MonthlyReport {
	report := &MonthlyReport{Total: decimal.Zero}

	var buckets [13]MonthlyTotal
	for e := range ledger.Expenses() {
		m := MonthOf(e.Date)
		if m > 12 {
			m = 0
		}
		buckets[m].Month = m
		buckets[m].Count++
		buckets[m].Total = buckets[m].Total.Add(e.Amount)

		report.Count++
		report.Total = report.Total.Add(e.Amount)
	}

	for m := 1; m <= 12; m++ {
		if buckets[m].Count > 0 {
			report.Months = append(report.Months, buckets[m])
		}
	}
	if buckets[0].Count > 0 {
		report.Months = append(report.Months, buckets[0])
	}
	return report
}
