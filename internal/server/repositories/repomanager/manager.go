// Package repomanager vends dialect-specific repository implementations
// and applies the matching schema migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/songregistry/internal/dbx"
	"github.com/dmitrijs2005/songregistry/internal/server/migrations"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/counter"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/entries"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/permissions"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Storage backend names accepted by New and Open.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Entries(db dbx.DBTX) entries.Repository
	Permissions(db dbx.DBTX) permissions.Repository
	Counter(db dbx.DBTX) counter.Repository
}

// migrateUp is a seam for testing migrations.Up.
var migrateUp = migrations.Up

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

var drivers = map[string]string{
	Postgres: "pgx",
	SQLite:   "sqlite",
}

// New returns the RepositoryManager for backend.
func New(backend string) (RepositoryManager, error) {
	switch backend {
	case Postgres:
		return &PostgresRepositoryManager{}, nil
	case SQLite:
		return &SQLiteRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// Open connects to the database for backend and verifies the connection.
func Open(ctx context.Context, backend, dsn string) (*sql.DB, error) {
	driver, ok := drivers[backend]
	if !ok {
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}

	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", backend, err)
	}

	// SQLite allows a single writer; one connection also keeps an
	// in-memory database alive for the life of the pool.
	if backend == SQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", backend, err)
	}
	return db, nil
}
