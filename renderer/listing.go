package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/papertrade"
)

// Listing renders market quotes as a rank/name/symbol/price table.
func Listing(quotes []papertrade.Quote) string {
	var b strings.Builder
	fmt.Fprintln(&b, "| Rank | Name | Symbol | Price |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|")
	for _, q := range quotes {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", q.Rank, q.Name, q.Symbol, q.Price)
	}
	return b.String()
}
