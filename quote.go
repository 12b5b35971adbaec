package papertrade

// Quote is the normalized answer a price provider gives for one symbol.
type Quote struct {
	Name   string // full name, e.g. "Bitcoin"
	Symbol string // market identifier, e.g. "BTC"
	Rank   int    // market-cap rank
	Price  Money  // current unit price in the requested currency
}

// QuoteProvider is the remote price-quote capability consumed by the trade
// engine. Implementations return an error wrapping ErrSymbolNotFound when the
// symbol is unknown, and ErrPriceQuery when the provider is unreachable or
// its response cannot be read.
type QuoteProvider interface {
	// Quote returns the current quote for one symbol in the given currency.
	Quote(symbol, currency string) (Quote, error)
	// Listing returns quotes for the market listing, ranked by market cap,
	// starting at the 1-based rank start.
	Listing(start, limit int, currency string) ([]Quote, error)
}
