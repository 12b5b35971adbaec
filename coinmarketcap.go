package papertrade

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultCoinMarketCapURL is the production endpoint of the quote service.
const DefaultCoinMarketCapURL = "https://pro-api.coinmarketcap.com/v1/cryptocurrency"

// CoinMarketCap is a QuoteProvider backed by the CoinMarketCap API.
//
// Responses look like:
//
//	{"data": {"BTC": {"name": "Bitcoin", "symbol": "BTC", "cmc_rank": 1,
//	                  "quote": {"USD": {"price": 50000.0}}}}}
//
// for symbol lookups, and the same entries as a "data" array for listings.
type CoinMarketCap struct {
	// Client performs the requests; defaults to a minute-cached client.
	Client *http.Client
	// BaseURL can be pointed at a test server.
	BaseURL string

	apiKey string
}

// NewCoinMarketCap creates a provider authenticating with the given API key.
func NewCoinMarketCap(apiKey string) *CoinMarketCap {
	return &CoinMarketCap{
		Client:  cachedClient(),
		BaseURL: DefaultCoinMarketCapURL,
		apiKey:  apiKey,
	}
}

// Quote implements QuoteProvider for a single symbol lookup.
func (c *CoinMarketCap) Quote(symbol, currency string) (Quote, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("convert", currency)

	var jobj map[string]any
	status, err := c.get("/quotes/latest", query, &jobj)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %v", ErrPriceQuery, err)
	}

	// The API answers 400 with an error status object for unknown symbols;
	// either way the data object not holding the symbol means not found.
	data, _ := jobj["data"].(map[string]any)
	entry, ok := data[symbol]
	if !ok {
		if status == http.StatusOK || status == http.StatusBadRequest {
			return Quote{}, fmt.Errorf("%w: %q", ErrSymbolNotFound, symbol)
		}
		return Quote{}, fmt.Errorf("%w: unexpected response status %d", ErrPriceQuery, status)
	}

	return parseQuoteEntry(entry, currency)
}

// Listing implements QuoteProvider for the unfiltered market listing.
func (c *CoinMarketCap) Listing(start, limit int, currency string) ([]Quote, error) {
	query := url.Values{}
	query.Set("start", strconv.Itoa(start))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("convert", currency)

	var jobj map[string]any
	status, err := c.get("/listings/latest", query, &jobj)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPriceQuery, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected response status %d", ErrPriceQuery, status)
	}

	entries, ok := jobj["data"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: response has no data array", ErrPriceQuery)
	}

	quotes := make([]Quote, 0, len(entries))
	for _, entry := range entries {
		quote, err := parseQuoteEntry(entry, currency)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}

// parseQuoteEntry normalizes one "data" entry into a Quote. The nested price
// is extracted with a jsonpath, the flat fields by direct map access.
func parseQuoteEntry(entry any, currency string) (Quote, error) {
	path := fmt.Sprintf("$.quote.%s.price", currency)
	jval, err := jsonpath.Get(path, entry)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: no price at %q: %v", ErrPriceQuery, path, err)
	}
	price, ok := jval.(float64)
	if !ok {
		return Quote{}, fmt.Errorf("%w: price at %q is not a number: %v", ErrPriceQuery, path, jval)
	}

	fields, _ := entry.(map[string]any)
	name, _ := fields["name"].(string)
	symbol, _ := fields["symbol"].(string)
	if symbol == "" {
		return Quote{}, fmt.Errorf("%w: entry has no symbol", ErrPriceQuery)
	}
	rank, _ := fields["cmc_rank"].(float64)

	return Quote{
		Name:   name,
		Symbol: symbol,
		Rank:   int(rank),
		Price:  M(price, currency),
	}, nil
}

// get performs an authenticated GET on the API and unmarshals the JSON body
// into data, regardless of the response status. It returns the status code so
// callers can tell an unknown symbol from an unreachable service.
func (c *CoinMarketCap) get(path string, query url.Values, data any) (int, error) {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-CMC_PRO_API_KEY", c.apiKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if err := json.Unmarshal(body, data); err != nil {
		return resp.StatusCode, fmt.Errorf("cannot parse response from %v%v: %v", req.URL.Host, req.URL.Path, err)
	}
	return resp.StatusCode, nil
}
