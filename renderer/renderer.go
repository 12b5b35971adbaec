// Package renderer turns ledger and market data into markdown tables. The
// command layer decides how to display the markdown (typically through
// glamour on a terminal), so everything here is plain text generation.
package renderer
