package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/expense"
	"github.com/shopspring/decimal"
)

// ExpensesMarkdown renders a list of expenses to a markdown table, in the
// order given.
func ExpensesMarkdown(expenses []expense.Expense) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Expenses\n\n")

	if len(expenses) == 0 {
		fmt.Fprintf(b, "No expenses to display.\n")
		return b.String()
	}

	fmt.Fprintf(b, "| ID | Date | Description | Amount |\n")
	fmt.Fprintf(b, "|---:|:---|:---|---:|\n")
	for _, e := range expenses {
		fmt.Fprintf(b, "| %d | %s | %s | %s |\n", e.ID, e.Date, e.Description, dollars(e.Amount))
	}
	return b.String()
}

// dollars formats an amount the way every report shows it, with two
// decimals.
func dollars(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
