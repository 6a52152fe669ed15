// Package transaction reads source transactions together with their tags.
// The source tables are owned by the import pipelines; nothing here writes
// to them.
package transaction

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/ledger-tags/internal/adapter/postgres"
	"github.com/heartmarshall/ledger-tags/internal/domain"
)

// Repo provides read access to per-source transactions.
type Repo struct {
	db postgres.Querier
}

// New creates a new transaction repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// transactionRow is the source-independent shape every per-source query
// projects into.
type transactionRow struct {
	ID               string    `db:"id"`
	OccurredAt       time.Time `db:"occurred_at"`
	Description      string    `db:"description"`
	AmountMinorUnits int64     `db:"amount_minor_units"`
	Direction        string    `db:"direction"`
	Tags             string    `db:"tags"`
}

func (r transactionRow) toDomain(source domain.Source) domain.Transaction {
	return domain.Transaction{
		ID:               r.ID,
		Source:           source,
		OccurredAt:       r.OccurredAt.UTC(),
		AmountMinorUnits: r.AmountMinorUnits,
		Direction:        domain.Direction(r.Direction),
		Description:      r.Description,
		Tags:             r.Tags,
	}
}

// tagsColumn aggregates the attached tag values, ordered by tag id, into one
// space separated string. Untagged rows get "".
func tagsColumn(schema postgres.SourceSchema) string {
	return fmt.Sprintf(
		"COALESCE((SELECT string_agg(t.value, ' ' ORDER BY t.id) FROM %s l JOIN tags t ON t.id = l.tag_id WHERE l.transaction_id = %s), '') AS tags",
		schema.LinkTable, schema.Col(schema.IDColumn),
	)
}

func selectTransactions(schema postgres.SourceSchema) sq.SelectBuilder {
	return postgres.Builder.
		Select(
			schema.Col(schema.IDColumn)+" AS id",
			schema.Col(schema.TimeColumn)+" AS occurred_at",
			schema.Col(schema.DescriptionColumn)+" AS description",
			schema.Col(schema.AmountColumn)+" AS amount_minor_units",
			schema.DirectionExpr+" AS direction",
			tagsColumn(schema),
		).
		From(schema.Table + " tx")
}

// Find returns the transactions of source matching f, newest first.
// Rows sharing a timestamp are ordered by id so the result is deterministic.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) Find(ctx context.Context, source domain.Source, f domain.TransactionFilter) ([]domain.Transaction, error) {
	schema, err := postgres.SchemaFor(source)
	if err != nil {
		return nil, err
	}

	query, args, err := applyFilter(selectTransactions(schema), schema, f).
		OrderBy(
			schema.Col(schema.TimeColumn)+" DESC",
			schema.Col(schema.IDColumn)+" ASC",
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find %s transactions: %w", source, err)
	}

	var rows []transactionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, string(source)+" transactions", "")
	}

	result := make([]domain.Transaction, len(rows))
	for i, row := range rows {
		result[i] = row.toDomain(source)
	}
	return result, nil
}

// Exists reports whether source has a transaction with the given id.
func (r *Repo) Exists(ctx context.Context, source domain.Source, id string) (bool, error) {
	schema, err := postgres.SchemaFor(source)
	if err != nil {
		return false, err
	}

	query, args, err := postgres.Builder.
		Select("1").
		From(schema.Table).
		Where(sq.Eq{schema.IDColumn: id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s transaction exists: %w", source, err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, string(source)+" transaction", id)
	}
	return exists, nil
}
