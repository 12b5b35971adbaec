package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/papertrade/renderer"
	"github.com/google/subcommands"
)

type buyCmd struct {
	symbol string
	amount string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy an amount of a symbol at the current price" }
func (*buyCmd) Usage() string {
	return `pt buy -s <symbol> [-a <amount>]

  Buys an amount of a symbol at the current market price. The cost is debited
  from the cash balance. Without -a, the amount is asked interactively.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Market symbol, e.g. BTC")
	f.StringVar(&c.amount, "a", "", "Amount to buy (decimal)")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	amount, err := resolveAmount(c.amount, "buy", c.symbol)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tx, err := newEngine().Buy(c.symbol, amount)
	if err != nil {
		return report(err)
	}
	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
