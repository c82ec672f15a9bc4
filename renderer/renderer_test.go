package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/expense"
	"github.com/shopspring/decimal"
)

func TestExpensesMarkdown(t *testing.T) {
	expenses := []expense.Expense{
		{ID: 1, Date: "2024-01-01", Description: "Coffee", Amount: decimal.RequireFromString("3.5")},
		{ID: 2, Date: "2024-01-02", Description: "Book", Amount: decimal.RequireFromString("12")},
	}

	got := ExpensesMarkdown(expenses)
	want := `# Expenses

| ID | Date | Description | Amount |
|---:|:---|:---|---:|
| 1 | 2024-01-01 | Coffee | $3.50 |
| 2 | 2024-01-02 | Book | $12.00 |
`
	if got != want {
		t.Errorf("ExpensesMarkdown() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestExpensesMarkdown_Empty(t *testing.T) {
	got := ExpensesMarkdown(nil)
	want := `# Expenses

No expenses to display.
`
	if got != want {
		t.Errorf("ExpensesMarkdown() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown(decimal.RequireFromString("35"))
	want := "Total expenses: $35.00\n"
	if got != want {
		t.Errorf("SummaryMarkdown(). Got: %q, want: %q", got, want)
	}
}

func TestMonthSummaryMarkdown(t *testing.T) {
	got := MonthSummaryMarkdown(2, decimal.RequireFromString("20"))
	want := "Total expenses for month 2: $20.00\n"
	if got != want {
		t.Errorf("MonthSummaryMarkdown(). Got: %q, want: %q", got, want)
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	ledger := expense.NewLedger()
	ledger.Insert("2024-01-10", "January lunch", decimal.RequireFromString("10"))
	ledger.Insert("2024-01-20", "January dinner", decimal.RequireFromString("5"))
	ledger.Insert("2024-02-01", "February rent", decimal.RequireFromString("20"))
	ledger.Insert("someday", "Mystery", decimal.RequireFromString("1"))

	got := MonthlyMarkdown(expense.NewMonthlyReport(ledger))

	// The exact table layout belongs to the markdown library, check the
	// content instead.
	for _, want := range []string{
		"Monthly Report",
		"January",
		"February",
		"(unknown)",
		"$15.00",
		"$20.00",
		"$36.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("MonthlyMarkdown() output misses %q.\nGot:\n%s", want, got)
		}
	}
}

func TestMonthlyMarkdown_Empty(t *testing.T) {
	got := MonthlyMarkdown(expense.NewMonthlyReport(expense.NewLedger()))
	if !strings.Contains(got, "No expenses to display.") {
		t.Errorf("MonthlyMarkdown() on an empty ledger.\nGot:\n%s", got)
	}
}
