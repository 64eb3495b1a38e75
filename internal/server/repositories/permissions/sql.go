package permissions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/songregistry/internal/common"
	"github.com/dmitrijs2005/songregistry/internal/dbx"
	"github.com/dmitrijs2005/songregistry/internal/server/models"
)

type queries struct {
	get    string
	insert string
	list   string
}

type SQLRepository struct {
	db dbx.DBTX
	q  queries
}

func (r *SQLRepository) Get(ctx context.Context, entryID int64, user models.Principal) (*models.Permission, error) {
	p := &models.Permission{EntryID: entryID, User: user}
	err := r.db.QueryRowContext(ctx, r.q.get, entryID, string(user)).Scan(&p.Authorized)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *SQLRepository) Insert(ctx context.Context, p *models.Permission) error {
	res, err := r.db.ExecContext(ctx, r.q.insert, p.EntryID, string(p.User), p.Authorized)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorDuplicateKey
	}
	return nil
}

func (r *SQLRepository) List(ctx context.Context) ([]*models.Permission, error) {
	rows, err := r.db.QueryContext(ctx, r.q.list)
	if err != nil {
		return nil, fmt.Errorf("failed to select permissions: %w", err)
	}
	defer rows.Close()

	var result []*models.Permission
	for rows.Next() {
		var (
			p    models.Permission
			user string
		)
		if err := rows.Scan(&p.EntryID, &user, &p.Authorized); err != nil {
			return nil, err
		}
		p.User = models.Principal(user)
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
