package papertrade

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store owns the persisted ledger file. It is the only component that touches
// the storage medium; everything else works on the in-memory Ledger it loads.
type Store struct {
	path     string
	currency string
}

// NewStore creates a store for the ledger file at path, with monetary values
// in the given reference currency.
func NewStore(path, currency string) *Store {
	return &Store{path: path, currency: currency}
}

// Path returns the ledger file location.
func (s *Store) Path() string { return s.path }

// Currency returns the store's reference currency.
func (s *Store) Currency() string { return s.currency }

// Load reads the persisted ledger. The first time, when no file exists, it
// initializes a default ledger and persists it immediately, so the file
// exists from the very first invocation on.
func (s *Store) Load() (*Ledger, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		ledger := NewLedger(s.currency)
		if err := s.Save(ledger); err != nil {
			return nil, err
		}
		return ledger, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f, s.currency)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrStorageCorrupt, s.path, err)
	}
	return ledger, nil
}

// Save serializes the full ledger, replacing the prior file content. The
// write goes to a temporary file in the same directory which is then renamed
// over the target, so a failure mid-write leaves the previous content intact.
func (s *Store) Save(ledger *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		return fmt.Errorf("%w (%s): %v", ErrStorageWrite, s.path, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("%w (%s): %v", ErrStorageWrite, s.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w (%s): %v", ErrStorageWrite, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w (%s): %v", ErrStorageWrite, s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w (%s): %v", ErrStorageWrite, s.path, err)
	}
	return nil
}

// Mutate runs one load-modify-save cycle. The ledger is persisted only when
// fn returns nil; on error nothing is written and the previous file content
// stands. A file lock around this method is the single place concurrency
// control would go if concurrent invocations ever became a requirement.
func (s *Store) Mutate(fn func(*Ledger) error) error {
	ledger, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(ledger); err != nil {
		return err
	}
	return s.Save(ledger)
}
