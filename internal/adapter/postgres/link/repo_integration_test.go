//go:build integration

package link_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/ledger-tags/internal/adapter/postgres/link"
	"github.com/heartmarshall/ledger-tags/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/ledger-tags/internal/domain"
)

func TestRepo_ReplaceCycle(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := link.New(pool)
	ctx := context.Background()

	tx := testhelper.SeedStarling(t, pool, "", time.Now(), 100, domain.DirectionOut, "links")
	a := testhelper.SeedTag(t, pool, "la-"+testhelper.UniqueSuffix())
	b := testhelper.SeedTag(t, pool, "lb-"+testhelper.UniqueSuffix())

	n, err := repo.Insert(ctx, domain.SourceStarling, tx.ID, []int64{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.Insert(ctx, domain.SourceStarling, tx.ID, []int64{a.ID})
	require.NoError(t, err)
	assert.Zero(t, n, "existing links are kept")

	n, err = repo.DeleteByTransaction(ctx, domain.SourceStarling, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.DeleteByTransaction(ctx, domain.SourceStarling, tx.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRepo_Insert_UnknownTransaction(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := link.New(pool)

	tg := testhelper.SeedTag(t, pool, "orphan-"+testhelper.UniqueSuffix())

	_, err := repo.Insert(context.Background(), domain.SourceAmex, "AMX-missing-"+testhelper.UniqueSuffix(), []int64{tg.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
