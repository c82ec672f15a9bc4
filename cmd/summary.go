package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	month string
	json  bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the total of the recorded expenses" }
func (*summaryCmd) Usage() string {
	return `xps summary [-month <1-12>] [-json]

  Displays the total of all expenses, or of a single calendar month whatever
  the year. A month that does not read as a number is ignored.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Only total the expenses of this month (1-12).")
	f.BoolVar(&c.json, "json", false, "Print the total as a JSON object.")
	f.StringVar(ledgerFile, "f", *ledgerFile, "Path to the ledger file.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	month, filtered := -1, false
	if m, err := strconv.Atoi(c.month); c.month != "" && err == nil && m >= 0 {
		month, filtered = m, true
	}

	var total = ledger.Sum()
	if filtered {
		total = ledger.Sum(expense.InMonth(month))
	}

	if c.json {
		scope := ""
		if filtered {
			scope = fmt.Sprintf("month %d", month)
		}
		out, err := expense.SummaryJSON(scope, total)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding summary: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}

	if filtered {
		printMarkdown(renderer.MonthSummaryMarkdown(month, total))
	} else {
		printMarkdown(renderer.SummaryMarkdown(total))
	}
	return subcommands.ExitSuccess
}
