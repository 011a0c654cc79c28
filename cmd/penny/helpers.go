package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/penny-wise/internal/config"
	"github.com/Veraticus/penny-wise/internal/ledger"
	"github.com/Veraticus/penny-wise/internal/storage"
	"github.com/spf13/viper"
)

// initLedger opens the configured database, migrates it, and hydrates the
// ledger. The returned cleanup closes the store.
func initLedger(ctx context.Context) (*ledger.Ledger, func(), error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = store.Close() }

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	l := ledger.New(store)
	if err := l.Load(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return l, cleanup, nil
}
