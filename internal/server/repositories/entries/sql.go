package entries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/songregistry/internal/common"
	"github.com/dmitrijs2005/songregistry/internal/dbx"
	"github.com/dmitrijs2005/songregistry/internal/server/models"
)

// queries holds one dialect's statements. insert takes
// (id, title, artist, owner, duration, creation_height, genre, tags);
// set takes the same columns with id moved last.
type queries struct {
	get    string
	insert string
	set    string
	list   string
}

// SQLRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLRepository struct {
	db dbx.DBTX
	q  queries
}

func (r *SQLRepository) Get(ctx context.Context, id int64) (*models.Entry, error) {
	entry, err := scanEntry(r.db.QueryRowContext(ctx, r.q.get, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

func (r *SQLRepository) Insert(ctx context.Context, entry *models.Entry) error {
	tags, err := encodeTags(entry.Tags)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, r.q.insert,
		entry.ID, entry.Title, entry.Artist, string(entry.Owner), entry.Duration, entry.CreationHeight, entry.Genre, tags)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res, common.ErrorDuplicateKey)
}

func (r *SQLRepository) Set(ctx context.Context, entry *models.Entry) error {
	tags, err := encodeTags(entry.Tags)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, r.q.set,
		entry.Title, entry.Artist, string(entry.Owner), entry.Duration, entry.CreationHeight, entry.Genre, tags, entry.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res, common.ErrorNotFound)
}

// List returns every entry ordered by id.
func (r *SQLRepository) List(ctx context.Context) ([]*models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, r.q.list)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*models.Entry, error) {
	var (
		e     models.Entry
		owner string
		tags  string
	)
	if err := s.Scan(&e.ID, &e.Title, &e.Artist, &owner, &e.Duration, &e.CreationHeight, &e.Genre, &tags); err != nil {
		return nil, err
	}
	e.Owner = models.Principal(owner)
	if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
		return nil, fmt.Errorf("decode tags of entry %d: %w", e.ID, err)
	}
	return &e, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

func expectOneRow(res sql.Result, none error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return none
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
