// Package dbtest provides throwaway SQLite databases for package tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/instock-backend/internal/platform/database"
)

// New opens a schema-initialised SQLite database in a temp directory. It is
// closed when the test finishes.
func New(t testing.TB) *database.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "instock.db")
	db, err := database.Open(context.Background(), database.DriverSQLite, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.ApplySchema(context.Background()))
	return db
}
