package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	month string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the expenses in the ledger" }
func (*listCmd) Usage() string {
	return `xps list [-month <1-12>]

  Lists expenses in collection order. With -month, only the expenses of that
  calendar month, whatever the year.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Only list expenses of this month (1-12).")
	f.StringVar(ledgerFile, "f", *ledgerFile, "Path to the ledger file.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	expenses := slices.Collect(ledger.Expenses(monthFilter(c.month)...))
	printMarkdown(renderer.ExpensesMarkdown(expenses))

	return subcommands.ExitSuccess
}

// monthFilter turns the -month flag value into ledger filters. A value that
// does not read as a month means no filtering, not an error.
func monthFilter(flag string) []expense.Filter {
	if flag == "" {
		return nil
	}
	m, err := strconv.Atoi(flag)
	if err != nil || m < 0 {
		return nil
	}
	return []expense.Filter{expense.InMonth(m)}
}
