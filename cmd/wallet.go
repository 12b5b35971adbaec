package cmd

import (
	"context"
	"flag"

	"github.com/etnz/papertrade/renderer"
	"github.com/google/subcommands"
)

type walletCmd struct{}

func (*walletCmd) Name() string     { return "wallet" }
func (*walletCmd) Synopsis() string { return "show the current balance and holdings" }
func (*walletCmd) Usage() string {
	return `pt wallet

  Shows the current cash balance and the net held amount of every symbol.
  Fully liquidated positions are not shown.
`
}

func (*walletCmd) SetFlags(*flag.FlagSet) {}

func (*walletCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openStore().Load()
	if err != nil {
		return report(err)
	}
	printMarkdown(renderer.Wallet(ledger.Balance(), ledger.Holdings()))
	return subcommands.ExitSuccess
}
