package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	output string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the ledger file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `xps fmt [-o <file>]

  Reads the ledger and writes it back, one line per record. Lines that do
  not parse are dropped, whitespace is normalized, everything else is kept
  as it was, including ids and record order. With -o the result goes to
  another file instead, or to stdout with "-".
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write the formatted ledger to this file instead, \"-\" for stdout.")
	f.StringVar(ledgerFile, "f", *ledgerFile, "Path to the ledger file.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	switch c.output {
	case "-":
		if err := expense.EncodeLedger(os.Stdout, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
			return subcommands.ExitFailure
		}
	case "":
		if err := expense.SaveLedger(ledgerPath(), ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Ledger file %q has been formatted.\n", ledgerPath())
	default:
		if err := expense.SaveLedger(c.output, ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Formatted ledger written to %q.\n", c.output)
	}

	return subcommands.ExitSuccess
}
