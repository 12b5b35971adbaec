package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the ledger file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `pt fmt

  Validates the ledger file and writes it back in the canonical layout:
  stable key order, stable indentation. Fails without writing if the history
  ever drives a position negative.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	ledger, err := store.Load()
	if err != nil {
		return report(err)
	}
	if err := ledger.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: ledger %q is inconsistent: %v\n", store.Path(), err)
		return subcommands.ExitFailure
	}
	if err := store.Save(ledger); err != nil {
		return report(err)
	}
	fmt.Printf("Formatted %s\n", store.Path())
	return subcommands.ExitSuccess
}
