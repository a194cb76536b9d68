package main

import (
	"context"
	"testing"

	"github.com/snnyvrz/locallibrary/internal/catalog"
	"github.com/snnyvrz/locallibrary/internal/repository"
	"github.com/snnyvrz/locallibrary/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_PopulatesEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(repository.NewGormStore(testutil.NewTestDB(t)))

	require.NoError(t, seed(ctx, svc))

	counts, err := svc.GetOverviewCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, &catalog.OverviewCounts{
		Books:                  int64(len(seedBooks)),
		BookInstances:          int64(len(seedInstances)),
		AvailableBookInstances: 5,
		Authors:                int64(len(seedAuthors)),
		Genres:                 int64(len(seedGenres)),
	}, counts)

	instances, err := svc.ListBookInstances(ctx)
	require.NoError(t, err)
	for _, bi := range instances {
		detail, err := svc.GetBookInstanceDetail(ctx, bi.ID.String())
		require.NoError(t, err)
		assert.Len(t, detail.History, 1, "instance %s", bi.ID)
	}
}

func TestSeed_SkipsNonEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(repository.NewGormStore(testutil.NewTestDB(t)))

	require.NoError(t, seed(ctx, svc))
	require.NoError(t, seed(ctx, svc))

	counts, err := svc.GetOverviewCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(seedAuthors)), counts.Authors)
	assert.Equal(t, int64(len(seedInstances)), counts.BookInstances)
}

func TestSeed_StoreFailure(t *testing.T) {
	svc := catalog.NewService(repository.NewGormStore(testutil.NewUnmigratedDB(t)))

	err := seed(context.Background(), svc)
	var storeErr *catalog.StoreError
	assert.ErrorAs(t, err, &storeErr)
}
