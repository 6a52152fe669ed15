//go:build integration

package transaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/ledger-tags/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/ledger-tags/internal/adapter/postgres/transaction"
	"github.com/heartmarshall/ledger-tags/internal/domain"
	"github.com/heartmarshall/ledger-tags/internal/filter"
)

func newRepo(t *testing.T) (*transaction.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return transaction.New(pool), pool
}

func ids(txs []domain.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}

func TestRepo_Find_NewestFirstWithTags(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	marker := "shop-" + testhelper.UniqueSuffix()
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	older := testhelper.SeedStarling(t, pool, "", base, 500, domain.DirectionOut, marker)
	newer := testhelper.SeedStarling(t, pool, "", base.Add(time.Hour), 900, domain.DirectionIn, marker)

	b := testhelper.SeedTag(t, pool, "b-"+marker)
	a := testhelper.SeedTag(t, pool, "a-"+marker)
	testhelper.SeedLink(t, pool, domain.SourceStarling, newer.ID, a.ID)
	testhelper.SeedLink(t, pool, domain.SourceStarling, newer.ID, b.ID)

	got, err := repo.Find(ctx, domain.SourceStarling, domain.TransactionFilter{Search: marker})
	require.NoError(t, err)
	require.Equal(t, []string{newer.ID, older.ID}, ids(got))

	assert.Equal(t, b.Value+" "+a.Value, got[0].Tags, "tags follow tag id order")
	assert.Equal(t, "", got[1].Tags)
	assert.Equal(t, domain.DirectionIn, got[0].Direction)
	assert.True(t, newer.OccurredAt.Equal(got[0].OccurredAt))
}

func TestRepo_Find_SearchIsCaseInsensitiveAndLiteral(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	marker := testhelper.UniqueSuffix()
	hit := testhelper.SeedAmex(t, pool, "", time.Now(), 100, "Big SALE 50% "+marker)
	testhelper.SeedAmex(t, pool, "", time.Now(), 100, "Big SALE 500 "+marker)

	got, err := repo.Find(ctx, domain.SourceAmex, domain.TransactionFilter{Search: "sale 50% " + marker})
	require.NoError(t, err)
	assert.Equal(t, []string{hit.ID}, ids(got))
}

func TestRepo_Find_TagFilterIsAnyOfAndKeepsAllTags(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	marker := testhelper.UniqueSuffix()
	food := testhelper.SeedTag(t, pool, "food-"+marker)
	bills := testhelper.SeedTag(t, pool, "bills-"+marker)
	extra := testhelper.SeedTag(t, pool, "extra-"+marker)

	at := time.Now()
	x := testhelper.SeedAmex(t, pool, "", at, 1, marker)
	y := testhelper.SeedAmex(t, pool, "", at.Add(-time.Minute), 2, marker)
	testhelper.SeedAmex(t, pool, "", at.Add(-2*time.Minute), 3, marker)

	testhelper.SeedLink(t, pool, domain.SourceAmex, x.ID, food.ID)
	testhelper.SeedLink(t, pool, domain.SourceAmex, x.ID, extra.ID)
	testhelper.SeedLink(t, pool, domain.SourceAmex, y.ID, bills.ID)

	got, err := repo.Find(ctx, domain.SourceAmex, domain.TransactionFilter{
		Tags: []string{food.Value, bills.Value},
	})
	require.NoError(t, err)
	require.Equal(t, []string{x.ID, y.ID}, ids(got))
	assert.Equal(t, food.Value+" "+extra.Value, got[0].Tags)
}

func TestRepo_Find_DateBounds(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	marker := "dates-" + testhelper.UniqueSuffix()
	dayStart := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	before := testhelper.SeedAmex(t, pool, "", dayStart.Add(-time.Microsecond), 1, marker)
	first := testhelper.SeedAmex(t, pool, "", dayStart, 1, marker)
	last := testhelper.SeedAmex(t, pool, "", dayEnd.Add(-time.Microsecond), 1, marker)
	after := testhelper.SeedAmex(t, pool, "", dayEnd, 1, marker)

	f := filter.Compile(filter.Criteria{Search: marker, DateFrom: "2024-01-15", DateTo: "2024-01-15"})
	got, err := repo.Find(ctx, domain.SourceAmex, f)
	require.NoError(t, err)
	assert.Equal(t, []string{last.ID, first.ID}, ids(got))

	f = filter.Compile(filter.Criteria{Search: marker, DateFrom: "15/01/2024"})
	got, err = repo.Find(ctx, domain.SourceAmex, f)
	require.NoError(t, err)
	assert.Equal(t, []string{after.ID, last.ID, first.ID, before.ID}, ids(got), "malformed date is ignored")
}

func TestRepo_Exists(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	tx := testhelper.SeedStarling(t, pool, "", time.Now(), 1, domain.DirectionOut, "exists")

	ok, err := repo.Exists(ctx, domain.SourceStarling, tx.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, domain.SourceAmex, tx.ID)
	require.NoError(t, err)
	assert.False(t, ok, "ids are scoped to their source")
}
