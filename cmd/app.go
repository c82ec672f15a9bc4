// Package cmd implements the CLI application to manage a ledger of expenses.
package cmd

import (
	"flag"
	"log"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&listCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&exportCmd{}, "exchange")
	c.Register(&importCmd{}, "exchange")
	c.Register(&importJSONCmd{}, "exchange")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// ledgerFile is the top-level -f flag. Subcommands rebind the same variable
// so that the flag works on either side of the command word.
var ledgerFile = flag.String("f", "", "Path to the ledger file. Overrides EXPENSES_FILE and the config file.")

// loadLedger reads the ledger from the resolved location.
func loadLedger() (*expense.Ledger, error) {
	return expense.LoadLedger(ledgerPath())
}

// saveLedger rewrites the ledger to the resolved location. A failed save is
// reported as a warning and does not change the command exit status.
func saveLedger(ledger *expense.Ledger) {
	if err := expense.SaveLedger(ledgerPath(), ledger); err != nil {
		log.Printf("warning: could not save ledger: %v", err)
	}
}
