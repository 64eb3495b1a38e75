package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/songregistry/internal/server/migrations"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/counter"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/entries"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/permissions"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestNew(t *testing.T) {
	m, err := New(Postgres)
	require.NoError(t, err)
	assert.IsType(t, &PostgresRepositoryManager{}, m)

	m, err = New(SQLite)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteRepositoryManager{}, m)

	_, err = New("mysql")
	require.Error(t, err)
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)

	for _, m := range []RepositoryManager{&PostgresRepositoryManager{}, &SQLiteRepositoryManager{}} {
		var _ entries.Repository = m.Entries(db)
		var _ permissions.Repository = m.Permissions(db)
		var _ counter.Repository = m.Counter(db)

		assert.NotNil(t, m.Entries(db))
		assert.NotNil(t, m.Permissions(db))
		assert.NotNil(t, m.Counter(db))
	}
}

func TestRunMigrations_UsesDialectDir(t *testing.T) {
	db, _ := newDB(t)

	var gotDir string
	orig := migrateUp
	migrateUp = func(ctx context.Context, db *sql.DB, dir string) error {
		gotDir = dir
		return nil
	}
	defer func() { migrateUp = orig }()

	require.NoError(t, (&PostgresRepositoryManager{}).RunMigrations(context.Background(), db))
	assert.Equal(t, migrations.PostgresDir, gotDir)

	require.NoError(t, (&SQLiteRepositoryManager{}).RunMigrations(context.Background(), db))
	assert.Equal(t, migrations.SQLiteDir, gotDir)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)

	orig := migrateUp
	migrateUp = func(ctx context.Context, db *sql.DB, dir string) error {
		return errors.New("boom")
	}
	defer func() { migrateUp = orig }()

	err := (&PostgresRepositoryManager{}).RunMigrations(context.Background(), db)
	require.EqualError(t, err, "boom")
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "")
	require.Error(t, err)
}

func TestOpen_PingFailure(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectPing().WillReturnError(errors.New("unreachable"))

	orig := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		assert.Equal(t, "pgx", driver)
		return db, nil
	}
	defer func() { sqlOpen = orig }()

	_, err := Open(context.Background(), Postgres, "postgres://x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping postgres: unreachable")
}

func TestOpen_OpenFailure(t *testing.T) {
	orig := sqlOpen
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		return nil, errors.New("bad driver")
	}
	defer func() { sqlOpen = orig }()

	_, err := Open(context.Background(), SQLite, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open sqlite: bad driver")
}

func TestOpen_SQLiteEndToEnd(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, SQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()

	m, err := New(SQLite)
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(ctx, db))

	n, err := m.Counter(db).Current(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
