package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	description string
	amount      string
	date        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense in the ledger" }
func (*addCmd) Usage() string {
	return `xps add -description <text> -amount <number> [-date <date>]

  Records a new expense and prints its assigned ID. The description must not
  be blank and the amount must be a positive number.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "description", "", "What the money was spent on (required)")
	f.StringVar(&c.amount, "amount", "", "Amount spent, a positive number (required)")
	f.StringVar(&c.date, "date", "", "Date of the expense (YYYY-MM-DD). Defaults to today.")
	f.StringVar(ledgerFile, "f", *ledgerFile, "Path to the ledger file.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Validate before touching the ledger, so that a bad call cannot cause
	// a rewrite.
	description := strings.TrimSpace(c.description)
	amount, err := decimal.NewFromString(c.amount)
	if description == "" || err != nil || !amount.IsPositive() {
		fmt.Fprintln(os.Stderr, "ERROR 0x01: Invalid arguments for adding an expense.")
		return subcommands.ExitFailure
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	var e expense.Expense
	if c.date != "" {
		e = ledger.Insert(c.date, description, amount)
	} else {
		e = ledger.Add(description, amount)
	}
	saveLedger(ledger)

	fmt.Printf("Expense added successfully (ID: %d)\n", e.ID)
	return subcommands.ExitSuccess
}
