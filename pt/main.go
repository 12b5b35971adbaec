package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/papertrade/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// .env may carry COINMARKETCAP_API_KEY; missing file is fine.
	_ = godotenv.Load()

	name := path.Base(os.Args[0])
	cmd.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
