// Package counter persists the registry's identifier allocator: a single
// row holding the number of entries ever created.
package counter

import "context"

type Repository interface {
	// Next increments the counter and returns the new value.
	Next(ctx context.Context) (int64, error)
	Current(ctx context.Context) (int64, error)
}
