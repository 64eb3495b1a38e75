package counter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/songregistry/internal/dbx"
)

// ErrMissingRow is returned when the counter row was never seeded.
var ErrMissingRow = errors.New("registry counter row missing")

type queries struct {
	next    string
	current string
}

// The counter row is seeded by the initial migration, so both dialects
// share the same statements.
var sharedQueries = queries{
	next:    `UPDATE registry_counter SET total_count = total_count + 1 WHERE id = 1 RETURNING total_count`,
	current: `SELECT total_count FROM registry_counter WHERE id = 1`,
}

type SQLRepository struct {
	db dbx.DBTX
	q  queries
}

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, q: sharedQueries}
}

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, q: sharedQueries}
}

func (r *SQLRepository) Next(ctx context.Context) (int64, error) {
	return r.scalar(ctx, r.q.next)
}

func (r *SQLRepository) Current(ctx context.Context) (int64, error) {
	return r.scalar(ctx, r.q.current)
}

func (r *SQLRepository) scalar(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrMissingRow
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
