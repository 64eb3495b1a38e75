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

// SQLiteRepositoryManager vends SQLite-backed repositories. It is used
// for single-node deployments and tests.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Entries(db dbx.DBTX) entries.Repository {
	return entries.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Permissions(db dbx.DBTX) permissions.Repository {
	return permissions.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Counter(db dbx.DBTX) counter.Repository {
	return counter.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, migrations.SQLiteDir)
}
