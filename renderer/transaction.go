package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/papertrade"
)

// Transaction renders a one-line confirmation of an executed trade.
func Transaction(tx papertrade.Transaction) string {
	switch tx.Type {
	case papertrade.Purchase:
		return fmt.Sprintf("Purchased %s %s for %s", tx.Amount, tx.Symbol, tx.Total)
	case papertrade.Sale:
		return fmt.Sprintf("Sold %s %s for %s", tx.Amount, tx.Symbol, tx.Total)
	default:
		return string(tx.Type)
	}
}

// History renders the full transaction log as a table, oldest first. The
// Value column shows the recorded total, whether it was persisted as a cost
// or as a value.
func History(transactions []papertrade.Transaction) string {
	var b strings.Builder
	fmt.Fprintln(&b, "| Type | Symbol | Amount | Price | Value | Time |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|:---|")
	for _, tx := range transactions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Type.Display(),
			tx.Symbol,
			tx.Amount,
			tx.Price,
			tx.Total,
			tx.Time.Format(papertrade.TimeLayout),
		)
	}
	return b.String()
}
