package store

import (
	"testing"
)

// NewTestHistory opens an in-memory SQLite history that is closed when the
// test ends. This is only intended for use in tests.
func NewTestHistory(t testing.TB) *SQLiteHistory {
	t.Helper()

	h, err := OpenSQLite(memoryPath)
	if err != nil {
		t.Fatalf("Failed to open test history: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}
