package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/songregistry/internal/dbx"
	"github.com/dmitrijs2005/songregistry/internal/server/migrations"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/counter"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/entries"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/permissions"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories.
type PostgresRepositoryManager struct{}

// Entries returns an entries.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Entries(db dbx.DBTX) entries.Repository {
	return entries.NewPostgresRepository(db)
}

// Permissions returns a permissions.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Permissions(db dbx.DBTX) permissions.Repository {
	return permissions.NewPostgresRepository(db)
}

// Counter returns a counter.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Counter(db dbx.DBTX) counter.Repository {
	return counter.NewPostgresRepository(db)
}

// RunMigrations applies the embedded PostgreSQL migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, migrations.PostgresDir)
}
