package cmd

import (
	"context"
	"flag"

	"github.com/etnz/papertrade"
	"github.com/etnz/papertrade/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	symbol string
	tail   int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list recorded transactions, oldest first" }
func (*historyCmd) Usage() string {
	return `pt history [-s <symbol>] [-tail <n>]

  Lists the recorded transactions in the order they were executed.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Show only transactions for this symbol")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions")
}

func (c *historyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openStore().Load()
	if err != nil {
		return report(err)
	}

	var transactions []papertrade.Transaction
	for _, tx := range ledger.Transactions() {
		if c.symbol == "" || tx.Symbol == c.symbol {
			transactions = append(transactions, tx)
		}
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.History(transactions))
	return subcommands.ExitSuccess
}
