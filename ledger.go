package papertrade

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// DefaultBalance is the cash every fresh ledger starts with.
const DefaultBalance = 1000.0

// Ledger is the root aggregate: a cash balance plus the append-only log of
// transactions, in insertion order. Balance and holdings are always
// consistent with the recorded history; the only way to change either is
// Apply.
type Ledger struct {
	balance      Money
	transactions []Transaction
}

// NewLedger creates a ledger with the default balance and an empty log.
func NewLedger(currency string) *Ledger {
	return &Ledger{
		balance:      M(DefaultBalance, currency),
		transactions: make([]Transaction, 0),
	}
}

// Balance returns the current cash balance.
func (l *Ledger) Balance() Money { return l.balance }

// Currency returns the ledger's reference currency.
func (l *Ledger) Currency() string { return l.balance.Currency() }

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator over the log, oldest first. The yielded
// order is the record of history and is never resorted.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// History returns a copy of the transaction log for display, oldest first.
func (l *Ledger) History() []Transaction {
	return slices.Clone(l.transactions)
}

// Available folds a transaction log and returns the net held amount of a
// symbol: +amount for each purchase, −amount for each sell. It is a pure
// function over the history; a log produced by validated Apply calls never
// yields a negative result.
func Available(transactions []Transaction, symbol string) Quantity {
	var net Quantity
	for _, tx := range transactions {
		if tx.Symbol != symbol {
			continue
		}
		switch tx.Type {
		case Purchase:
			net = net.Add(tx.Amount)
		case Sale:
			net = net.Sub(tx.Amount)
		}
	}
	return net
}

// Available returns the net held amount of a symbol in this ledger.
func (l *Ledger) Available(symbol string) Quantity {
	return Available(l.transactions, symbol)
}

// Holdings returns the net held amount for every symbol in the history.
// Fully liquidated positions (net amount not positive) are excluded, as they
// represent nothing to display or sell.
func (l *Ledger) Holdings() map[string]Quantity {
	net := make(map[string]Quantity)
	for _, tx := range l.transactions {
		switch tx.Type {
		case Purchase:
			net[tx.Symbol] = net[tx.Symbol].Add(tx.Amount)
		case Sale:
			net[tx.Symbol] = net[tx.Symbol].Sub(tx.Amount)
		}
	}
	for symbol, amount := range net {
		if !amount.IsPositive() {
			delete(net, symbol)
		}
	}
	return net
}

// Symbols iterates over the held symbols in alphabetical order.
func (l *Ledger) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		symbols := slices.Collect(maps.Keys(l.Holdings()))
		slices.Sort(symbols)
		for _, symbol := range symbols {
			if !yield(symbol) {
				return
			}
		}
	}
}

// Apply validates a transaction against the current state, mutates the
// balance and appends the transaction. On error the ledger is unchanged.
// A purchase may not drive the balance negative; a sell may not exceed the
// available amount of its symbol.
func (l *Ledger) Apply(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	switch tx.Type {
	case Purchase:
		if l.balance.LessThan(tx.Total) {
			return fmt.Errorf("%w: %s %s costs %s, balance is %s",
				ErrInsufficientFunds, tx.Amount, tx.Symbol, tx.Total, l.balance)
		}
		l.balance = l.balance.Sub(tx.Total)
	case Sale:
		available := l.Available(tx.Symbol)
		if tx.Amount.GreaterThan(available) {
			return fmt.Errorf("%w: cannot sell %s %s, only %s available",
				ErrInsufficientHoldings, tx.Amount, tx.Symbol, available)
		}
		l.balance = l.balance.Add(tx.Total)
	}
	l.transactions = append(l.transactions, tx)
	return nil
}

// Check replays the whole history and verifies the ledger invariants: no
// prefix of the log ever drives a position or the cash balance negative, and
// the recorded balance is consistent with the recorded totals.
func (l *Ledger) Check() error {
	// Work the balance backwards to the ledger's inception, then replay.
	balance := l.balance
	for _, tx := range l.transactions {
		switch tx.Type {
		case Purchase:
			balance = balance.Add(tx.Total)
		case Sale:
			balance = balance.Sub(tx.Total)
		}
	}
	if balance.IsNegative() {
		return fmt.Errorf("recorded balance %s implies a negative initial balance %s", l.balance, balance)
	}

	positions := make(map[string]Quantity)
	for i, tx := range l.transactions {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		switch tx.Type {
		case Purchase:
			balance = balance.Sub(tx.Total)
			positions[tx.Symbol] = positions[tx.Symbol].Add(tx.Amount)
		case Sale:
			balance = balance.Add(tx.Total)
			positions[tx.Symbol] = positions[tx.Symbol].Sub(tx.Amount)
		}
		if balance.IsNegative() {
			return fmt.Errorf("transaction %d drives the balance negative (%s)", i, balance)
		}
		if positions[tx.Symbol].IsNegative() {
			return fmt.Errorf("transaction %d drives the %s position negative (%s)", i, tx.Symbol, positions[tx.Symbol])
		}
	}
	return nil
}

// Equal reports whether two ledgers have the same balance and the same
// transaction sequence in the same order.
func (l *Ledger) Equal(o *Ledger) bool {
	if !l.balance.Equal(o.balance) || len(l.transactions) != len(o.transactions) {
		return false
	}
	for i, tx := range l.transactions {
		if !tx.Equal(o.transactions[i]) {
			return false
		}
	}
	return true
}
