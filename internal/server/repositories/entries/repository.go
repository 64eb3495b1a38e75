// Package entries provides SQL-backed storage for registry entries.
package entries

import (
	"context"

	"github.com/dmitrijs2005/songregistry/internal/server/models"
)

// Repository is the entry store. Get and Set fail with common.ErrorNotFound
// for unknown ids; Insert fails with common.ErrorDuplicateKey for taken ones.
type Repository interface {
	Get(ctx context.Context, id int64) (*models.Entry, error)
	Insert(ctx context.Context, entry *models.Entry) error
	Set(ctx context.Context, entry *models.Entry) error
	List(ctx context.Context) ([]*models.Entry, error)
}
