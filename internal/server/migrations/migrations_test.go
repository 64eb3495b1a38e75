package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestUp_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, Up(ctx, db, SQLiteDir))
	require.NoError(t, Up(ctx, db, SQLiteDir), "second run is a no-op")

	var total int64
	require.NoError(t, db.QueryRow(`SELECT total_count FROM registry_counter WHERE id = 1`).Scan(&total))
	require.Zero(t, total)
}

func TestUp_UnknownDir(t *testing.T) {
	require.Error(t, Up(context.Background(), nil, "mysql"))
}

func TestMigrations_EmbedsBothDialects(t *testing.T) {
	for _, dir := range []string{PostgresDir, SQLiteDir} {
		entries, err := Migrations.ReadDir(dir)
		require.NoError(t, err)
		require.NotEmpty(t, entries, dir)
	}
}
