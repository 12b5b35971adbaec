package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete installs shell completion for the binary. It must run before flag
// parsing; it is a no-op outside a completion request.
func Complete(name string) {
	trade := &complete.Command{
		Flags: map[string]complete.Predictor{
			"s": predict.Something,
			"a": predict.Something,
		},
	}

	cmd := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.json"),
			"currency":    predict.Set{"USD", "EUR", "GBP"},
			"cmc-api-key": predict.Something,
		},
		Sub: map[string]*complete.Command{
			"list": {Flags: map[string]complete.Predictor{
				"start": predict.Something,
				"n":     predict.Something,
			}},
			"search": {Flags: map[string]complete.Predictor{
				"s": predict.Something,
			}},
			"buy":  trade,
			"sell": trade,
			"wallet": {},
			"history": {Flags: map[string]complete.Predictor{
				"s":    predict.Something,
				"tail": predict.Something,
			}},
			"fmt":   {},
			"topic": {Args: predict.Set{"ledger-format", "trading", "quotes"}},
		},
	}
	cmd.Complete(name)
}
