package storage

import (
	"context"
	"path/filepath"
	"testing"
)

// Helper function to create test storage.
func createTestStore(t *testing.T) (*SQLiteStore, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func TestSQLiteStore_SaveLoad(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		writes  [][]byte
		want    string
		wantOK  bool
		wantErr bool
	}{
		{
			name:   "roundtrip",
			key:    RecordTransactions,
			writes: [][]byte{[]byte(`[{"id":"t1"}]`)},
			want:   `[{"id":"t1"}]`,
			wantOK: true,
		},
		{
			name:   "overwrite replaces prior value",
			key:    RecordCategories,
			writes: [][]byte{[]byte(`["old"]`), []byte(`["new"]`)},
			want:   `["new"]`,
			wantOK: true,
		},
		{
			name:   "empty value is still a record",
			key:    RecordTransactions,
			writes: [][]byte{[]byte(`[]`)},
			want:   `[]`,
			wantOK: true,
		},
		{
			name:   "missing key",
			key:    "nonexistent",
			wantOK: false,
		},
		{
			name:    "empty key rejected",
			key:     "",
			writes:  [][]byte{[]byte(`[]`)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStore(t)
			defer cleanup()

			ctx := context.Background()
			for _, value := range tt.writes {
				err := store.Save(ctx, tt.key, value)
				if tt.wantErr {
					if err == nil {
						t.Fatal("Expected save error, got nil")
					}
					return
				}
				if err != nil {
					t.Fatalf("Save failed: %v", err)
				}
			}

			value, ok, err := store.Load(ctx, tt.key)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if tt.wantOK && string(value) != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, value)
			}
		})
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	if err := store.Save(ctx, RecordCategories, []byte(`["kept"]`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	if err := reopened.Migrate(ctx); err != nil {
		t.Fatalf("Migrate on reopen failed: %v", err)
	}

	value, ok, err := reopened.Load(ctx, RecordCategories)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected record to survive reopen")
	}
	if string(value) != `["kept"]` {
		t.Errorf("Expected %q, got %q", `["kept"]`, value)
	}
}

func TestSQLiteStore_MigrateIsIdempotent(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Second migrate failed: %v", err)
	}
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	if _, err := NewSQLiteStore(""); err == nil {
		t.Fatal("Expected error for empty path")
	}
}
