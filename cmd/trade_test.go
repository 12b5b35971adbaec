package cmd

import (
	"testing"

	"github.com/etnz/papertrade"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input   string
		want    papertrade.Quantity
		wantErr bool
	}{
		{input: "0.01", want: papertrade.Q(0.01)},
		{input: "  2 \n", want: papertrade.Q(2)},
		{input: "-0.5", want: papertrade.Q(-0.5)}, // sign checked later, by the engine
		{input: "lots", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := parseAmount(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseAmount(%q) accepted bad input", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAmount(%q) failed: %v", tc.input, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("parseAmount(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestResolveAmount_PromptsWhenFlagMissing(t *testing.T) {
	orig := promptAmount
	defer func() { promptAmount = orig }()

	prompted := false
	promptAmount = func(verb, symbol string) (papertrade.Quantity, error) {
		prompted = true
		if verb != "buy" || symbol != "BTC" {
			t.Errorf("prompt for %q %q, want buy BTC", verb, symbol)
		}
		return papertrade.Q(0.01), nil
	}

	got, err := resolveAmount("", "buy", "BTC")
	if err != nil {
		t.Fatalf("resolveAmount() failed: %v", err)
	}
	if !prompted {
		t.Error("resolveAmount() did not prompt for the missing flag")
	}
	if !got.Equal(papertrade.Q(0.01)) {
		t.Errorf("resolveAmount() = %s, want 0.01", got)
	}

	prompted = false
	got, err = resolveAmount("0.5", "buy", "BTC")
	if err != nil {
		t.Fatalf("resolveAmount() failed: %v", err)
	}
	if prompted {
		t.Error("resolveAmount() prompted although the flag was set")
	}
	if !got.Equal(papertrade.Q(0.5)) {
		t.Errorf("resolveAmount() = %s, want 0.5", got)
	}
}
