// Package sqltest opens throwaway migrated SQLite databases for tests.
package sqltest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/songregistry/internal/server/migrations"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// NewDB returns an in-memory SQLite database with the registry schema
// applied. It is closed when the test ends.
func NewDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := migrations.Up(context.Background(), db, migrations.SQLiteDir); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
