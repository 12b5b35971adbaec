// Package cmd implements the CLI application to manage the paper-trading ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/papertrade"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&listCmd{}, "market")
	c.Register(&searchCmd{}, "market")

	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")

	c.Register(&walletCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.json", "Path to the ledger file (JSON format)")
var currency = flag.String("currency", "USD", "Reference currency for balances and quotes")

const cmcKeyEnv = "COINMARKETCAP_API_KEY"

var cmcKeyFlag = flag.String("cmc-api-key", "", "CoinMarketCap API key for fetching quotes.\n If missing it will read the environment variable \""+cmcKeyEnv+"\". You can get one at https://coinmarketcap.com/api/")

func cmcAPIKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *cmcKeyFlag == "" {
		*cmcKeyFlag = os.Getenv(cmcKeyEnv)
	}
	return *cmcKeyFlag
}

// openStore is the central function to open the ledger store.
func openStore() *papertrade.Store {
	return papertrade.NewStore(*ledgerFile, *currency)
}

// newProvider builds the quote provider from the app configuration.
func newProvider() papertrade.QuoteProvider {
	return papertrade.NewCoinMarketCap(cmcAPIKey())
}

// newEngine builds the trade engine over the configured store and provider.
func newEngine() *papertrade.Engine {
	return papertrade.NewEngine(openStore(), newProvider())
}

// report prints a command error and maps it to an exit status. Trade
// rejections (unknown symbol, bad amount, not enough funds or holdings) are
// normal outcomes: the message is the result, and the process exits zero.
// Storage and provider failures exit non-zero.
func report(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	switch {
	case errors.Is(err, papertrade.ErrStorageCorrupt),
		errors.Is(err, papertrade.ErrStorageWrite),
		errors.Is(err, papertrade.ErrPriceQuery):
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
