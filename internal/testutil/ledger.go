// Package testutil provides test fixtures for ledger and storage tests.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/penny-wise/internal/ledger"
	"github.com/Veraticus/penny-wise/internal/storage"
)

// SetupTestLedger creates a ledger over an in-memory record store, hydrated
// with the default seed categories.
func SetupTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	store := storage.NewMemoryStore()
	l := ledger.New(store)

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return l
}

// SetupTestLedgerWithStore creates a ledger over the given record store, so
// tests can pre-seed or inspect the persisted records.
func SetupTestLedgerWithStore(t *testing.T, store storage.RecordStore) *ledger.Ledger {
	t.Helper()

	l := ledger.New(store)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}

	return l
}
