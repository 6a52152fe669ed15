// Package link implements the per-source transaction/tag link tables.
// Each source keeps its own link table; the source picks the table.
package link

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/ledger-tags/internal/adapter/postgres"
	"github.com/heartmarshall/ledger-tags/internal/domain"
)

// Repo provides transaction/tag link persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new link repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// DeleteByTransaction removes every tag link of a transaction and returns
// how many links were removed. Zero is not an error.
func (r *Repo) DeleteByTransaction(ctx context.Context, source domain.Source, transactionID string) (int64, error) {
	schema, err := postgres.SchemaFor(source)
	if err != nil {
		return 0, err
	}

	query, args, err := postgres.Builder.
		Delete(schema.LinkTable).
		Where(sq.Eq{"transaction_id": transactionID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete links: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, string(source)+" transaction links", transactionID)
	}

	return tag.RowsAffected(), nil
}

// Insert links tagIDs to a transaction. Existing links are kept as they are.
// A missing transaction or tag surfaces as domain.ErrNotFound via the
// foreign keys.
func (r *Repo) Insert(ctx context.Context, source domain.Source, transactionID string, tagIDs []int64) (int64, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}

	schema, err := postgres.SchemaFor(source)
	if err != nil {
		return 0, err
	}

	b := postgres.Builder.
		Insert(schema.LinkTable).
		Columns("transaction_id", "tag_id")
	for _, id := range domain.UniqueIDs(tagIDs) {
		b = b.Values(transactionID, id)
	}

	query, args, err := b.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert links: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, string(source)+" transaction links", transactionID)
	}

	return tag.RowsAffected(), nil
}
