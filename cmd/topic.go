package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/papertrade/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show a documentation topic" }
func (*topicCmd) Usage() string {
	return `pt topic [<name>]

  Shows a documentation topic. Without a name, lists the available topics.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		index, err := docs.GetIndex()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		printMarkdown(index)
		return subcommands.ExitSuccess
	}

	content, err := docs.GetTopic(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(content)
	return subcommands.ExitSuccess
}
