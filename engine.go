package papertrade

import (
	"fmt"
	"time"
)

// Engine orchestrates trades: it fetches the execution price, validates the
// request, and applies the resulting transaction to the ledger in one
// load-modify-save cycle. Every call performs exactly one price query and, at
// most, one load and one save; the first failure is terminal and leaves the
// persisted ledger untouched.
type Engine struct {
	store    *Store
	provider QuoteProvider
	now      func() time.Time
}

// NewEngine creates a trade engine over the given store and quote provider.
func NewEngine(store *Store, provider QuoteProvider) *Engine {
	return &Engine{store: store, provider: provider, now: time.Now}
}

// Buy purchases amount of symbol at the current market price. It fails with
// ErrSymbolNotFound, ErrInvalidAmount or ErrInsufficientFunds without
// mutating the ledger; on success it returns the recorded transaction.
func (e *Engine) Buy(symbol string, amount Quantity) (Transaction, error) {
	quote, err := e.provider.Quote(symbol, e.store.Currency())
	if err != nil {
		return Transaction{}, err
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	var tx Transaction
	err = e.store.Mutate(func(ledger *Ledger) error {
		tx = NewPurchase(symbol, amount, quote.Price, e.now())
		return ledger.Apply(tx)
	})
	if err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Sell sells amount of symbol at the current market price. It fails with
// ErrSymbolNotFound, ErrInvalidAmount or ErrInsufficientHoldings without
// mutating the ledger; on success it returns the recorded transaction.
func (e *Engine) Sell(symbol string, amount Quantity) (Transaction, error) {
	quote, err := e.provider.Quote(symbol, e.store.Currency())
	if err != nil {
		return Transaction{}, err
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	var tx Transaction
	err = e.store.Mutate(func(ledger *Ledger) error {
		tx = NewSale(symbol, amount, quote.Price, e.now())
		return ledger.Apply(tx)
	})
	if err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Balance is the read-only projection of the current cash balance.
func (e *Engine) Balance() (Money, error) {
	ledger, err := e.store.Load()
	if err != nil {
		return Money{}, err
	}
	return ledger.Balance(), nil
}

// Holdings is the read-only projection of net held amounts per symbol,
// excluding fully liquidated positions.
func (e *Engine) Holdings() (map[string]Quantity, error) {
	ledger, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	return ledger.Holdings(), nil
}

// History is the read-only projection of the transaction log, oldest first.
func (e *Engine) History() ([]Transaction, error) {
	ledger, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	return ledger.History(), nil
}
