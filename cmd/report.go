package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a month by month report of the expenses" }
func (*reportCmd) Usage() string {
	return `xps report

  Displays one line per calendar month holding expenses, with the number of
  records and the month's total. Records whose date holds no readable month
  are grouped on an (unknown) line.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(ledgerFile, "f", *ledgerFile, "Path to the ledger file.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MonthlyMarkdown(expense.NewMonthlyReport(ledger)))

	return subcommands.ExitSuccess
}
