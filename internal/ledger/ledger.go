// Package ledger owns the authoritative in-memory transaction and category
// collections and writes every mutation through to the persistence port.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Veraticus/penny-wise/internal/model"
	"github.com/Veraticus/penny-wise/internal/storage"
)

// Ledger is the single-user store: two in-memory collections hydrated from
// the record store at startup and persisted after every mutation. All
// operations run to completion on one goroutine; there is no locking because
// there is exactly one execution context.
type Ledger struct {
	store        storage.RecordStore
	transactions []model.Transaction
	categories   []model.Category
}

// New creates a ledger backed by the given record store. Call Load before
// any other operation.
func New(store storage.RecordStore) *Ledger {
	return &Ledger{store: store}
}

// Load hydrates both collections from the record store. A missing
// transactions record yields an empty collection; a missing categories
// record installs the default seed set and persists it immediately. A
// corrupt record is logged and replaced by the same fallback rather than
// failing startup; the next successful commit overwrites the corrupt bytes.
func (l *Ledger) Load(ctx context.Context) error {
	transactions, err := loadRecord[model.Transaction](ctx, l.store, storage.RecordTransactions)
	if err != nil {
		return err
	}
	l.transactions = transactions

	categories, err := loadRecord[model.Category](ctx, l.store, storage.RecordCategories)
	if err != nil {
		return err
	}

	if categories == nil {
		seed := defaultCategories()
		if err := l.commitCategories(ctx, seed); err != nil {
			return fmt.Errorf("failed to persist seed categories: %w", err)
		}
		slog.Info("installed default categories", "count", len(seed))
		return nil
	}

	l.categories = categories
	return nil
}

// loadRecord reads and decodes one collection. It returns nil (not an empty
// slice) when the record does not exist or does not decode, so the caller
// can distinguish "never persisted" from "persisted empty".
func loadRecord[T any](ctx context.Context, store storage.RecordStore, key string) ([]T, error) {
	value, ok, err := store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(value, &items); err != nil {
		slog.Warn("discarding corrupt record", "key", key, "error", err)
		return nil, nil
	}
	return items, nil
}

// commitTransactions replaces the transaction collection and persists it.
// The in-memory commit stands even when the write fails; the worst-case
// failure mode is an unpersisted state, never a crash.
func (l *Ledger) commitTransactions(ctx context.Context, next []model.Transaction) error {
	l.transactions = next
	return saveRecord(ctx, l.store, storage.RecordTransactions, next)
}

// commitCategories replaces the category collection and persists it.
func (l *Ledger) commitCategories(ctx context.Context, next []model.Category) error {
	l.categories = next
	return saveRecord(ctx, l.store, storage.RecordCategories, next)
}

// saveRecord persists a collection under key. Empty collections are
// persisted too, so deleting the last item survives a restart.
func saveRecord[T any](ctx context.Context, store storage.RecordStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	value, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := store.Save(ctx, key, value); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}
