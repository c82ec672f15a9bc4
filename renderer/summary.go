package renderer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SummaryMarkdown renders the total of the whole ledger.
func SummaryMarkdown(total decimal.Decimal) string {
	return fmt.Sprintf("Total expenses: %s\n", dollars(total))
}

// MonthSummaryMarkdown renders the total of a single month.
func MonthSummaryMarkdown(month int, total decimal.Decimal) string {
	return fmt.Sprintf("Total expenses for month %d: %s\n", month, dollars(total))
}
