package papertrade

import (
	"testing"
	"time"
)

func at(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", s, err)
	}
	return ts
}

func TestAvailable(t *testing.T) {
	transactions := []Transaction{
		NewPurchase("BTC", Q(0.5), M(40000, "USD"), time.Time{}),
		NewPurchase("ETH", Q(2), M(3000, "USD"), time.Time{}),
		NewSale("BTC", Q(0.2), M(45000, "USD"), time.Time{}),
		NewPurchase("BTC", Q(0.1), M(42000, "USD"), time.Time{}),
		NewSale("ETH", Q(2), M(3500, "USD"), time.Time{}),
	}

	testCases := []struct {
		name   string
		symbol string
		want   Quantity
	}{
		{name: "net of buys and sells", symbol: "BTC", want: Q(0.4)},
		{name: "fully liquidated", symbol: "ETH", want: Q(0)},
		{name: "never traded", symbol: "DOGE", want: Q(0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Available(transactions, tc.symbol)
			if !got.Equal(tc.want) {
				t.Errorf("Available(%q) = %s, want %s", tc.symbol, got, tc.want)
			}
		})
	}
}

func TestLedger_Holdings_ExcludesLiquidated(t *testing.T) {
	ledger := NewLedger("USD")
	mustApply(t, ledger, NewPurchase("BTC", Q(0.01), M(50000, "USD"), time.Time{}))
	mustApply(t, ledger, NewPurchase("ETH", Q(0.1), M(3000, "USD"), time.Time{}))
	mustApply(t, ledger, NewSale("BTC", Q(0.01), M(60000, "USD"), time.Time{}))

	holdings := ledger.Holdings()
	if _, ok := holdings["BTC"]; ok {
		t.Errorf("Holdings() contains fully liquidated BTC: %v", holdings)
	}
	if got, want := holdings["ETH"], Q(0.1); !got.Equal(want) {
		t.Errorf("Holdings()[ETH] = %s, want %s", got, want)
	}
}

func mustApply(t *testing.T, l *Ledger, tx Transaction) {
	t.Helper()
	if err := l.Apply(tx); err != nil {
		t.Fatalf("Apply(%v) failed: %v", tx, err)
	}
}

func TestLedger_Apply_InsufficientFunds(t *testing.T) {
	ledger := NewLedger("USD")
	err := ledger.Apply(NewPurchase("BTC", Q(0.1), M(50000, "USD"), time.Time{}))
	if !isErr(err, ErrInsufficientFunds) {
		t.Fatalf("Apply() error = %v, want ErrInsufficientFunds", err)
	}
	if got, want := ledger.Balance(), M(DefaultBalance, "USD"); !got.Equal(want) {
		t.Errorf("balance after rejected purchase = %s, want %s", got, want)
	}
	if ledger.Len() != 0 {
		t.Errorf("rejected purchase was appended, log has %d entries", ledger.Len())
	}
}

func TestLedger_Apply_InsufficientHoldings(t *testing.T) {
	ledger := NewLedger("USD")
	mustApply(t, ledger, NewPurchase("BTC", Q(0.01), M(50000, "USD"), time.Time{}))

	err := ledger.Apply(NewSale("BTC", Q(0.02), M(60000, "USD"), time.Time{}))
	if !isErr(err, ErrInsufficientHoldings) {
		t.Fatalf("Apply() error = %v, want ErrInsufficientHoldings", err)
	}
	if got, want := ledger.Balance(), M(500, "USD"); !got.Equal(want) {
		t.Errorf("balance after rejected sale = %s, want %s", got, want)
	}
	if ledger.Len() != 1 {
		t.Errorf("rejected sale was appended, log has %d entries", ledger.Len())
	}
}

func TestLedger_Apply_InvariantsOverSequence(t *testing.T) {
	// Whatever sequence of buys and sells is applied, balance and every
	// position must stay non-negative after each accepted operation.
	ledger := NewLedger("USD")
	ops := []Transaction{
		NewPurchase("BTC", Q(0.01), M(50000, "USD"), time.Time{}), // ok, balance 500
		NewSale("BTC", Q(0.02), M(60000, "USD"), time.Time{}),     // rejected
		NewPurchase("ETH", Q(0.2), M(3000, "USD"), time.Time{}),   // rejected, costs 600
		NewSale("BTC", Q(0.01), M(60000, "USD"), time.Time{}),     // ok, balance 1100
		NewPurchase("ETH", Q(0.2), M(3000, "USD"), time.Time{}),   // ok, balance 500
	}

	for i, tx := range ops {
		ledger.Apply(tx)
		if ledger.Balance().IsNegative() {
			t.Fatalf("after op %d balance is negative: %s", i, ledger.Balance())
		}
		for _, symbol := range []string{"BTC", "ETH"} {
			if ledger.Available(symbol).IsNegative() {
				t.Fatalf("after op %d %s position is negative: %s", i, symbol, ledger.Available(symbol))
			}
		}
	}

	if got, want := ledger.Balance(), M(500, "USD"); !got.Equal(want) {
		t.Errorf("final balance = %s, want %s", got, want)
	}
	if err := ledger.Check(); err != nil {
		t.Errorf("Check() on a validated history failed: %v", err)
	}
}

func TestLedger_Check_DetectsNegativePosition(t *testing.T) {
	// A hand-forged history that sells more than it bought must not pass.
	ledger := &Ledger{
		balance: M(2100, "USD"),
		transactions: []Transaction{
			NewPurchase("BTC", Q(0.01), M(50000, "USD"), at(t, "2026-08-29 10:00:00")),
			NewSale("BTC", Q(0.02), M(60000, "USD"), at(t, "2026-08-29 11:00:00")),
		},
	}
	if err := ledger.Check(); err == nil {
		t.Error("Check() passed a history with a negative position")
	}
}
