package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/papertrade/renderer"
	"github.com/google/subcommands"
)

type sellCmd struct {
	symbol string
	amount string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell an amount of a held symbol at the current price" }
func (*sellCmd) Usage() string {
	return `pt sell -s <symbol> [-a <amount>]

  Sells an amount of a held symbol at the current market price. The proceeds
  are credited to the cash balance. Without -a, the amount is asked
  interactively.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Market symbol, e.g. BTC")
	f.StringVar(&c.amount, "a", "", "Amount to sell (decimal)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	amount, err := resolveAmount(c.amount, "sell", c.symbol)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tx, err := newEngine().Sell(c.symbol, amount)
	if err != nil {
		return report(err)
	}
	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
