package papertrade

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeLedger serializes the full ledger to w as a single JSON object:
//
//	{"balance": 1000, "transactions": [...]}
//
// The output is indented and keys keep a stable order, so the file diffs
// cleanly between writes.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	var obj jsonObjectWriter
	obj.Append("balance", ledger.balance)
	obj.Append("transactions", ledger.transactions)
	raw, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "    "); err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	pretty.WriteByte('\n')

	_, err = w.Write(pretty.Bytes())
	return err
}

// txRecord is a specialized struct for decoding one persisted transaction.
// The total is stored under "cost" for purchases and "value" for sells.
type txRecord struct {
	Type   TradeType        `json:"type"`
	Symbol string           `json:"symbol"`
	Amount Quantity         `json:"amount"`
	Price  decimal.Decimal  `json:"price"`
	Cost   *decimal.Decimal `json:"cost"`
	Value  *decimal.Decimal `json:"value"`
	Time   string           `json:"time"`
}

func (r txRecord) total() (decimal.Decimal, error) {
	// Tolerate the keys being swapped, the way the original files were read,
	// but require exactly one of them.
	switch {
	case r.Cost != nil:
		return *r.Cost, nil
	case r.Value != nil:
		return *r.Value, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("transaction has neither cost nor value")
	}
}

// DecodeLedger reads a persisted ledger from r. The reference currency is not
// part of the file format; it is attached to every monetary value here.
func DecodeLedger(r io.Reader, currency string) (*Ledger, error) {
	var file struct {
		Balance      decimal.Decimal   `json:"balance"`
		Transactions []json.RawMessage `json:"transactions"`
	}
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("could not parse ledger: %w", err)
	}

	ledger := &Ledger{
		balance:      M(file.Balance, currency),
		transactions: make([]Transaction, 0, len(file.Transactions)),
	}
	if ledger.balance.IsNegative() {
		return nil, fmt.Errorf("ledger balance is negative: %s", ledger.balance)
	}

	for i, raw := range file.Transactions {
		var rec txRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("could not parse transaction %d: %w", i, err)
		}
		total, err := rec.total()
		if err != nil {
			return nil, fmt.Errorf("could not parse transaction %d: %w", i, err)
		}
		at, err := time.ParseInLocation(TimeLayout, rec.Time, time.Local)
		if err != nil {
			return nil, fmt.Errorf("could not parse transaction %d time %q: %w", i, rec.Time, err)
		}

		tx := Transaction{
			Type:   rec.Type,
			Symbol: rec.Symbol,
			Amount: rec.Amount,
			Price:  M(rec.Price, currency),
			Total:  M(total, currency),
			Time:   at,
		}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction %d: %w", i, err)
		}
		// The file is the source of truth: entries are restored verbatim, in
		// order, without replaying them against the balance.
		ledger.transactions = append(ledger.transactions, tx)
	}

	return ledger, nil
}
