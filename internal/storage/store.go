// Package storage persists the ledger's named records to a local store.
package storage

import "context"

// Record keys for the two persisted collections.
const (
	// RecordTransactions holds the serialized transaction array, newest-first.
	RecordTransactions = "transactions"
	// RecordCategories holds the serialized category array.
	RecordCategories = "categories"
)

// RecordStore is the persistence port: a key-value store of named serialized
// records. Implementations must make a Save visible to a subsequent Load.
type RecordStore interface {
	// Load returns the record value for key, and whether the record exists.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save writes the record value for key, creating or replacing it.
	Save(ctx context.Context, key string, value []byte) error
	// Close releases any resources held by the store.
	Close() error
}
