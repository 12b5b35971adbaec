package renderer

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/papertrade"
)

// Holdings renders the net held amount per symbol, alphabetically.
func Holdings(holdings map[string]papertrade.Quantity) string {
	var b strings.Builder
	fmt.Fprintln(&b, "| Symbol | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")

	symbols := slices.Collect(maps.Keys(holdings))
	slices.Sort(symbols)
	for _, symbol := range symbols {
		fmt.Fprintf(&b, "| %s | %s |\n", symbol, holdings[symbol])
	}
	return b.String()
}

// Wallet renders the current balance followed by the holdings table.
func Wallet(balance papertrade.Money, holdings map[string]papertrade.Quantity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current balance is %s\n\n", balance)
	b.WriteString(Holdings(holdings))
	return b.String()
}
