package papertrade

import (
	"bytes"
	"fmt"
	"os"
	"testing"
	"time"
)

// fakeProvider serves quotes from a fixed price table.
type fakeProvider struct {
	prices map[string]float64
}

func (p *fakeProvider) Quote(symbol, currency string) (Quote, error) {
	price, ok := p.prices[symbol]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", ErrSymbolNotFound, symbol)
	}
	return Quote{Name: symbol, Symbol: symbol, Rank: 1, Price: M(price, currency)}, nil
}

func (p *fakeProvider) Listing(start, limit int, currency string) ([]Quote, error) {
	var quotes []Quote
	for symbol := range p.prices {
		quotes = append(quotes, Quote{Name: symbol, Symbol: symbol, Rank: 1, Price: M(p.prices[symbol], currency)})
	}
	return quotes, nil
}

func newTestEngine(t *testing.T, prices map[string]float64) *Engine {
	t.Helper()
	e := NewEngine(newTestStore(t), &fakeProvider{prices: prices})
	e.now = func() time.Time { return at(t, "2026-08-29 10:30:00") }
	return e
}

func TestEngine_BuySellCycle(t *testing.T) {
	e := newTestEngine(t, map[string]float64{"BTC": 50000})

	tx, err := e.Buy("BTC", Q(0.01))
	if err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if got, want := tx.Total, M(500, "USD"); !got.Equal(want) {
		t.Errorf("purchase total = %s, want %s", got, want)
	}
	if balance, _ := e.Balance(); !balance.Equal(M(500, "USD")) {
		t.Errorf("balance after purchase = %s, want %s", balance, M(500, "USD"))
	}
	holdings, err := e.Holdings()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := holdings["BTC"], Q(0.01); !got.Equal(want) {
		t.Errorf("holdings[BTC] = %s, want %s", got, want)
	}

	// price moved up before the sale
	e.provider.(*fakeProvider).prices["BTC"] = 60000

	tx, err = e.Sell("BTC", Q(0.01))
	if err != nil {
		t.Fatalf("Sell() failed: %v", err)
	}
	if got, want := tx.Total, M(600, "USD"); !got.Equal(want) {
		t.Errorf("sale total = %s, want %s", got, want)
	}
	if balance, _ := e.Balance(); !balance.Equal(M(1100, "USD")) {
		t.Errorf("balance after sale = %s, want %s", balance, M(1100, "USD"))
	}
	holdings, err = e.Holdings()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := holdings["BTC"]; ok {
		t.Errorf("fully liquidated BTC still listed: %v", holdings)
	}

	history, err := e.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("history has %d entries, want 2", len(history))
	}
}

func TestEngine_Rejections(t *testing.T) {
	testCases := []struct {
		name    string
		trade   func(e *Engine) error
		wantErr error
	}{
		{
			name:    "unknown symbol",
			trade:   func(e *Engine) error { _, err := e.Buy("NOPE", Q(0.01)); return err },
			wantErr: ErrSymbolNotFound,
		},
		{
			name:    "zero amount",
			trade:   func(e *Engine) error { _, err := e.Buy("BTC", Q(0)); return err },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			trade:   func(e *Engine) error { _, err := e.Sell("BTC", Q(-0.01)); return err },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "purchase above balance",
			trade:   func(e *Engine) error { _, err := e.Buy("BTC", Q(0.1)); return err },
			wantErr: ErrInsufficientFunds,
		},
		{
			name:    "sale without holdings",
			trade:   func(e *Engine) error { _, err := e.Sell("BTC", Q(0.01)); return err },
			wantErr: ErrInsufficientHoldings,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, map[string]float64{"BTC": 50000})
			if err := tc.trade(e); !isErr(err, tc.wantErr) {
				t.Errorf("trade error = %v, want %v", err, tc.wantErr)
			}
			if balance, _ := e.Balance(); !balance.Equal(M(DefaultBalance, "USD")) {
				t.Errorf("rejected trade moved the balance to %s", balance)
			}
		})
	}
}

func TestEngine_RejectedTradeLeavesFileUntouched(t *testing.T) {
	e := newTestEngine(t, map[string]float64{"BTC": 50000})
	if _, err := e.Buy("BTC", Q(0.01)); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	before, err := os.ReadFile(e.store.Path())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := e.Sell("BTC", Q(1)); !isErr(err, ErrInsufficientHoldings) {
		t.Fatalf("Sell() error = %v, want ErrInsufficientHoldings", err)
	}

	after, err := os.ReadFile(e.store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("rejected sale rewrote the ledger file")
	}
}
