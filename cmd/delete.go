package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an expense from the ledger" }
func (*deleteCmd) Usage() string {
	return `xps delete -id <id>

  Deletes the expense with the given ID. Deleting an ID that does not exist
  is not an error. A deleted ID is never reassigned.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the expense to delete (required)")
	f.StringVar(ledgerFile, "f", *ledgerFile, "Path to the ledger file.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// An unreadable id counts as zero, and is rejected before the ledger is
	// touched.
	id, _ := strconv.Atoi(c.id)
	if id <= 0 {
		fmt.Fprintln(os.Stderr, "ERROR 0x02: Invalid ID for deletion.")
		return subcommands.ExitFailure
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !ledger.Delete(id) {
		// A missing id is a normal outcome, not a failure.
		fmt.Printf("Expense with ID %d not found.\n", id)
		return subcommands.ExitSuccess
	}
	saveLedger(ledger)

	fmt.Println("Expense deleted successfully")
	return subcommands.ExitSuccess
}
