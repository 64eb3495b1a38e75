// Package migrations embeds the goose SQL migrations for each supported
// dialect and applies them.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// Subdirectories of Migrations, one per dialect.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

var dialects = map[string]goose.Dialect{
	PostgresDir: goose.DialectPostgres,
	SQLiteDir:   goose.DialectSQLite3,
}

// Up applies every pending migration in dir to db.
func Up(ctx context.Context, db *sql.DB, dir string) error {
	dialect, ok := dialects[dir]
	if !ok {
		return fmt.Errorf("unknown migrations dir %q", dir)
	}

	fsys, err := fs.Sub(Migrations, dir)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate %s: %w", dir, err)
	}
	return nil
}
