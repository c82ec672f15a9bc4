package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type importCmd struct {
	dryRun bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import expenses in the import/export format" }
func (*importCmd) Usage() string {
	return `xps import [-dry-run] [<file>]

  Reads expenses in the import/export format from stdin, or from <file>, and
  appends them to the ledger. Imported records receive fresh IDs.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "dry-run", false, "Parse and report, but do not change the ledger.")
	f.StringVar(ledgerFile, "f", *ledgerFile, "Path to the ledger file.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	count, err := expense.ImportExpenses(in, ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing expenses: %v\n", err)
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

// importSource opens the import stream: the file named on the command line,
// or stdin when there is none. A nil reader means the returned status is
// final.
func importSource(f *flag.FlagSet) (io.ReadCloser, subcommands.ExitStatus) {
	if f.NArg() == 0 {
		return os.Stdin, subcommands.ExitSuccess
	}
	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return nil, subcommands.ExitFailure
	}
	return in, subcommands.ExitSuccess
}
