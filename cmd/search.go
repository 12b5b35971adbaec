package cmd

import (
	"context"
	"flag"

	"github.com/etnz/papertrade"
	"github.com/etnz/papertrade/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct {
	symbol string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "show the current price of one symbol" }
func (*searchCmd) Usage() string {
	return `pt search -s <symbol>

  Shows the current market price of a single symbol.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Market symbol, e.g. BTC")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	quote, err := newProvider().Quote(c.symbol, *currency)
	if err != nil {
		return report(err)
	}
	printMarkdown(renderer.Listing([]papertrade.Quote{quote}))
	return subcommands.ExitSuccess
}
