package ledger

import (
	"context"
	"log/slog"

	"github.com/Veraticus/penny-wise/internal/model"
)

// FilterAll matches every transaction for either filter dimension.
const FilterAll = "all"

// Filter selects a subset of the transaction list. The zero value matches
// everything.
type Filter struct {
	// Type is "all", "income", "expense", or "transfer".
	Type string
	// Category is "all" or a category name.
	Category string
}

// Matches reports whether the transaction passes both filter dimensions.
func (f Filter) Matches(t model.Transaction) bool {
	if f.Type != "" && f.Type != FilterAll && string(t.Type) != f.Type {
		return false
	}
	if f.Category != "" && f.Category != FilterAll && t.Category != f.Category {
		return false
	}
	return true
}

// AddTransaction prepends a validated transaction and persists the
// collection. Transactions are immutable: there is no update or delete.
func (l *Ledger) AddTransaction(ctx context.Context, t model.Transaction) error {
	next := make([]model.Transaction, 0, len(l.transactions)+1)
	next = append(next, t)
	next = append(next, l.transactions...)

	if err := l.commitTransactions(ctx, next); err != nil {
		return err
	}

	slog.Info("recorded transaction",
		"id", t.ID,
		"type", t.Type,
		"amount", t.Amount)
	return nil
}

// Transactions returns the full collection, newest-first.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// FilteredTransactions returns the subset passing the filter, preserving the
// newest-first ordering. Pure read; no side effects.
func (l *Ledger) FilteredTransactions(f Filter) []model.Transaction {
	var out []model.Transaction
	for _, t := range l.transactions {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
