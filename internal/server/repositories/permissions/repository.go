// Package permissions stores per-entry authorization flags keyed by
// (entry id, principal).
package permissions

import (
	"context"

	"github.com/dmitrijs2005/songregistry/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when no record exists for the pair.
	Get(ctx context.Context, entryID int64, user models.Principal) (*models.Permission, error)
	// Insert fails with common.ErrorDuplicateKey if the pair is taken.
	Insert(ctx context.Context, p *models.Permission) error
	List(ctx context.Context) ([]*models.Permission, error)
}
