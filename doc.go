// Package papertrade implements a paper-trading ledger for cryptocurrencies.
//
// The ledger is a single cash balance plus an append-only log of purchase and
// sell transactions, persisted as one JSON file. Positions are never stored:
// the amount of a symbol available for sale is always derived by folding the
// transaction log. Market prices come from a remote quote provider and are
// only trusted at execution time; every transaction records the unit price it
// was executed at.
package papertrade
