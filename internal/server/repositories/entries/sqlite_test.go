package entries

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/songregistry/internal/common"
	"github.com/dmitrijs2005/songregistry/internal/server/repositories/sqltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	repo := NewSQLiteRepository(sqltest.NewDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, 1)
	require.ErrorIs(t, err, common.ErrorNotFound)

	e := sampleEntry()
	require.NoError(t, repo.Insert(ctx, e))
	require.ErrorIs(t, repo.Insert(ctx, e), common.ErrorDuplicateKey)

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, e, got)

	updated := e.WithOwner("bob")
	require.NoError(t, repo.Set(ctx, &updated))
	got, err = repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &updated, got)

	missing := updated
	missing.ID = 99
	require.ErrorIs(t, repo.Set(ctx, &missing), common.ErrorNotFound)
}

func TestSQLiteRepository_List(t *testing.T) {
	repo := NewSQLiteRepository(sqltest.NewDB(t))
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	for _, id := range []int64{3, 1, 2} {
		e := sampleEntry()
		e.ID = id
		require.NoError(t, repo.Insert(ctx, e))
	}

	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].ID, all[1].ID, all[2].ID})
}

func TestSQLiteRepository_UnicodeFields(t *testing.T) {
	repo := NewSQLiteRepository(sqltest.NewDB(t))
	ctx := context.Background()

	e := sampleEntry()
	e.Title = "Песня № 1 ♫"
	e.Tags = []string{"живой", "日本"}
	require.NoError(t, repo.Insert(ctx, e))

	got, err := repo.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.Title, got.Title)
	assert.Equal(t, e.Tags, got.Tags)
}
