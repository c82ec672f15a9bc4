// Command xps keeps a personal ledger of expenses in a plain text file.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/expense/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	// Loads GEMINI_API_KEY and friends from a .env file when there is one.
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests, and returns immediately in a
// normal run. Install it with: COMP_INSTALL=1 xps
func completion() {
	ledger := map[string]complete.Predictor{"f": predict.Files("*.txt")}
	month := map[string]complete.Predictor{"f": predict.Files("*.txt"), "month": predict.Nothing}
	summary := map[string]complete.Predictor{"f": predict.Files("*.txt"), "month": predict.Nothing, "json": predict.Nothing}

	xps := &complete.Command{
		Flags: ledger,
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"f":           predict.Files("*.txt"),
				"description": predict.Nothing,
				"amount":      predict.Nothing,
				"date":        predict.Nothing,
			}},
			"list":    {Flags: month},
			"summary": {Flags: summary},
			"report":  {Flags: ledger},
			"delete": {Flags: map[string]complete.Predictor{
				"f":  predict.Files("*.txt"),
				"id": predict.Nothing,
			}},
			"fmt": {Flags: map[string]complete.Predictor{
				"f": predict.Files("*.txt"),
				"o": predict.Files("*.txt"),
			}},
			"export": {Flags: map[string]complete.Predictor{
				"f": predict.Files("*.txt"),
				"o": predict.Files("*.jsonl"),
			}},
			"import": {Args: predict.Files("*.jsonl"), Flags: map[string]complete.Predictor{
				"f":       predict.Files("*.txt"),
				"dry-run": predict.Nothing,
			}},
			"import-json": {Args: predict.Files("*.json"), Flags: map[string]complete.Predictor{
				"f":           predict.Files("*.txt"),
				"records":     predict.Nothing,
				"date":        predict.Nothing,
				"description": predict.Nothing,
				"amount":      predict.Nothing,
				"dry-run":     predict.Nothing,
			}},
			"topic":  {Args: predict.Set{"readme", "format", "summary", "import", "config", "assist", "*"}},
			"assist": {Flags: ledger},
		},
	}
	xps.Complete("xps")
}
