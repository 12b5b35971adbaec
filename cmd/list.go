package cmd

import (
	"context"
	"flag"

	"github.com/etnz/papertrade/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	start int
	limit int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list market prices ranked by market cap" }
func (*listCmd) Usage() string {
	return `pt list [-start <rank>] [-n <count>]

  Lists current market prices, ranked by market capitalization.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.start, "start", 1, "First rank to list (1-based)")
	f.IntVar(&c.limit, "n", 10, "Number of entries to list")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quotes, err := newProvider().Listing(c.start, c.limit, *currency)
	if err != nil {
		return report(err)
	}
	printMarkdown(renderer.Listing(quotes))
	return subcommands.ExitSuccess
}
