package papertrade

import "errors"

// Sentinel errors returned by the trade engine and the store. They are always
// wrapped with context (symbol, amounts, file path) and should be tested with
// errors.Is.
var (
	// ErrSymbolNotFound is returned when the quote provider does not know the
	// requested symbol.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrInvalidAmount is returned when a trade is requested for a zero or
	// negative amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a purchase would drive the cash
	// balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientHoldings is returned when a sell exceeds the net held
	// amount derived from the transaction log.
	ErrInsufficientHoldings = errors.New("insufficient holdings")

	// ErrStorageCorrupt is returned when an existing ledger file cannot be
	// parsed.
	ErrStorageCorrupt = errors.New("ledger file is corrupt")

	// ErrStorageWrite is returned when persisting the ledger fails. The
	// previously persisted content is left intact.
	ErrStorageWrite = errors.New("could not write ledger file")

	// ErrPriceQuery is returned when the quote provider is unreachable or
	// answers with something that is not a quote.
	ErrPriceQuery = errors.New("price query failed")
)
