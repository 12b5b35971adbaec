package papertrade

import (
	"fmt"
	"time"
)

// TradeType identifies the two kinds of ledger transactions.
type TradeType string

const (
	Purchase TradeType = "purchase"
	Sale     TradeType = "sell"
)

// Display returns the capitalized form used in reports.
func (t TradeType) Display() string {
	switch t {
	case Purchase:
		return "Purchase"
	case Sale:
		return "Sell"
	default:
		return string(t)
	}
}

// TimeLayout is the timestamp format used in the ledger file.
const TimeLayout = "2006-01-02 15:04:05"

// Transaction is a single executed trade. It is immutable once appended to
// the ledger: the price and total are the values at execution time and are
// never recomputed.
type Transaction struct {
	Type   TradeType
	Symbol string
	Amount Quantity
	Price  Money // unit price at execution time
	Total  Money // Price × Amount, persisted as "cost" (purchase) or "value" (sell)
	Time   time.Time
}

// NewPurchase creates a purchase transaction, computing its total cost.
func NewPurchase(symbol string, amount Quantity, price Money, at time.Time) Transaction {
	return Transaction{
		Type:   Purchase,
		Symbol: symbol,
		Amount: amount,
		Price:  price,
		Total:  price.Mul(amount),
		Time:   at,
	}
}

// NewSale creates a sell transaction, computing its total value.
func NewSale(symbol string, amount Quantity, price Money, at time.Time) Transaction {
	return Transaction{
		Type:   Sale,
		Symbol: symbol,
		Amount: amount,
		Price:  price,
		Total:  price.Mul(amount),
		Time:   at,
	}
}

func (t Transaction) Equal(o Transaction) bool {
	return t.Type == o.Type &&
		t.Symbol == o.Symbol &&
		t.Amount.Equal(o.Amount) &&
		t.Price.Equal(o.Price) &&
		t.Total.Equal(o.Total) &&
		t.Time.Equal(o.Time)
}

// Validate checks the transaction invariants that every appended entry must
// satisfy.
func (t Transaction) Validate() error {
	if t.Type != Purchase && t.Type != Sale {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if t.Symbol == "" {
		return fmt.Errorf("transaction symbol is missing")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("transaction price must be positive, got %s", t.Price)
	}
	return nil
}

// totalKey is the JSON field name of the total: the original file format
// records it as "cost" on purchases and "value" on sells.
func (t Transaction) totalKey() string {
	if t.Type == Purchase {
		return "cost"
	}
	return "value"
}

// MarshalJSON implements the json.Marshaler interface for Transaction,
// keeping the field order stable.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", t.Type)
	w.Append("symbol", t.Symbol)
	w.Append("amount", t.Amount)
	w.Append("price", t.Price)
	w.Append(t.totalKey(), t.Total)
	w.Append("time", t.Time.Format(TimeLayout))
	return w.MarshalJSON()
}
