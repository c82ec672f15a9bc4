package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type importJSONCmd struct {
	mapping expense.JSONMapping
	dryRun  bool
}

func (*importJSONCmd) Name() string { return "import-json" }
func (*importJSONCmd) Synopsis() string {
	return "import expenses from an arbitrary JSON document, as found in bank exports"
}
func (*importJSONCmd) Usage() string {
	return `xps import-json -records <path> -date <path> -description <path> -amount <path> [-dry-run] [<file>]

  Reads a JSON document from stdin, or from <file>, locates the records with
  the -records jsonpath, then extracts each expense field with the other
  paths, relative to each record. Amounts may be numbers or strings, with
  either '.' or ',' as decimal separator.

Example, for a document like {"transactions":[{"day":..,"label":..,"value":..}]}:
  xps import-json -records '$.transactions[*]' -date '$.day' -description '$.label' -amount '$.value' statement.json
`
}

func (c *importJSONCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mapping.Records, "records", "", "jsonpath locating the collection of records (required)")
	f.StringVar(&c.mapping.Date, "date", "", "jsonpath of the date, relative to a record (required)")
	f.StringVar(&c.mapping.Description, "description", "", "jsonpath of the description, relative to a record (required)")
	f.StringVar(&c.mapping.Amount, "amount", "", "jsonpath of the amount, relative to a record (required)")
	f.BoolVar(&c.dryRun, "dry-run", false, "Parse and report, but do not change the ledger.")
	f.StringVar(ledgerFile, "f", *ledgerFile, "Path to the ledger file.")
}

func (c *importJSONCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.mapping.Records == "" || c.mapping.Date == "" || c.mapping.Description == "" || c.mapping.Amount == "" {
		fmt.Fprintln(os.Stderr, "Error: the -records, -date, -description and -amount flags are all required.")
		return subcommands.ExitUsageError
	}

	in, status := importSource(f)
	if in == nil {
		return status
	}
	defer in.Close()

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	count, err := expense.ImportJSON(in, c.mapping, ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing document: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.dryRun {
		fmt.Printf("Would import %d expenses.\n", count)
		return subcommands.ExitSuccess
	}
	saveLedger(ledger)

	fmt.Printf("Imported %d expenses.\n", count)
	return subcommands.ExitSuccess
}
