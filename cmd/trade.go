package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/papertrade"
)

// promptAmount asks interactively for a trade amount when the -a flag is
// missing, like the original prompt-driven interface. It is a variable so
// tests can substitute a canned answer.
var promptAmount = func(verb, symbol string) (papertrade.Quantity, error) {
	fmt.Printf("Enter amount of %s to %s ", symbol, verb)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return papertrade.Quantity{}, fmt.Errorf("could not read amount: %w", err)
	}
	return parseAmount(line)
}

// parseAmount parses a user-supplied decimal amount.
func parseAmount(s string) (papertrade.Quantity, error) {
	q, err := papertrade.ParseQuantity(strings.TrimSpace(s))
	if err != nil {
		return papertrade.Quantity{}, fmt.Errorf("invalid amount %q: %w", strings.TrimSpace(s), err)
	}
	return q, nil
}

// resolveAmount returns the flag amount when given, and prompts otherwise.
func resolveAmount(flagValue, verb, symbol string) (papertrade.Quantity, error) {
	if flagValue != "" {
		return parseAmount(flagValue)
	}
	return promptAmount(verb, symbol)
}
