// Package tag implements the Tag repository using PostgreSQL.
// Tag values are unique; the unique constraint on tags.value is the only
// arbiter between concurrent creators.
package tag

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/ledger-tags/internal/adapter/postgres"
	"github.com/heartmarshall/ledger-tags/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tag repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// upsertTagsSQL inserts missing values in input order and returns both the
// inserted and the pre-existing rows. Rows committed by a concurrent writer
// after this statement's snapshot are skipped by ON CONFLICT and are not
// visible to the final SELECT; Upsert looks those up afterwards.
const upsertTagsSQL = `
WITH input AS (
    SELECT value, ord FROM unnest($1::text[]) WITH ORDINALITY AS u(value, ord)
),
inserted AS (
    INSERT INTO tags (value)
    SELECT value FROM input ORDER BY ord
    ON CONFLICT (value) DO NOTHING
    RETURNING id, value, created_at
)
SELECT id, value, created_at FROM inserted
UNION ALL
SELECT t.id, t.value, t.created_at FROM tags t JOIN input i ON i.value = t.value`

const getTagsByValuesSQL = `SELECT id, value, created_at FROM tags WHERE value = ANY($1::text[])`

const existingTagIDsSQL = `SELECT id FROM tags WHERE id = ANY($1::bigint[])`

var countLinksSQL = buildCountLinksSQL()

func buildCountLinksSQL() string {
	parts := make([]string, 0, 2)
	for _, table := range postgres.LinkTables() {
		parts = append(parts, fmt.Sprintf("(SELECT count(*) FROM %s WHERE tag_id = $1)", table))
	}
	return "SELECT " + strings.Join(parts, " + ")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns all tags in creation order.
// Returns an empty slice (not nil) when there are no tags.
func (r *Repo) List(ctx context.Context) ([]domain.Tag, error) {
	query, args, err := postgres.Builder.
		Select("id", "value", "created_at").
		From("tags").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tags: %w", err)
	}

	var tags []domain.Tag
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &tags, query, args...); err != nil {
		return nil, postgres.MapError(err, "tags", "")
	}

	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}

// GetByValues returns the tags whose value is in values, in no particular order.
func (r *Repo) GetByValues(ctx context.Context, values []string) ([]domain.Tag, error) {
	if len(values) == 0 {
		return []domain.Tag{}, nil
	}

	var tags []domain.Tag
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &tags, getTagsByValuesSQL, values); err != nil {
		return nil, postgres.MapError(err, "tags", "")
	}

	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}

// ExistByIDs reports which of ids exist. Every requested id is present in
// the result map.
func (r *Repo) ExistByIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	for _, id := range ids {
		result[id] = false
	}

	var found []int64
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &found, existingTagIDsSQL, ids); err != nil {
		return nil, postgres.MapError(err, "tags", "")
	}

	for _, id := range found {
		result[id] = true
	}
	return result, nil
}

// CountLinks returns how many transactions, across all sources, carry the tag.
func (r *Repo) CountLinks(ctx context.Context, id int64) (int, error) {
	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countLinksSQL, id).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "tag links", id)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert returns the tag for every value, creating the missing ones in a
// single statement. The result follows the order of values; duplicates in
// values are collapsed.
func (r *Repo) Upsert(ctx context.Context, values []string) ([]domain.Tag, error) {
	values = uniqueStrings(values)
	if len(values) == 0 {
		return []domain.Tag{}, nil
	}

	var rows []domain.Tag
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, upsertTagsSQL, values); err != nil {
		return nil, postgres.MapError(err, "tags", "")
	}

	byValue := make(map[string]domain.Tag, len(rows))
	for _, t := range rows {
		byValue[t.Value] = t
	}

	if missing := missingValues(values, byValue); len(missing) > 0 {
		// Lost a race against a concurrent insert: the winner's row is committed now.
		winners, err := r.GetByValues(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, t := range winners {
			byValue[t.Value] = t
		}
		if still := missingValues(values, byValue); len(still) > 0 {
			return nil, fmt.Errorf("upsert tags %v: %w", still, domain.ErrConflict)
		}
	}

	tags := make([]domain.Tag, len(values))
	for i, v := range values {
		tags[i] = byValue[v]
	}
	return tags, nil
}

// Delete removes a tag. CASCADE deletes its links in every source.
// Returns domain.ErrNotFound if the tag does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder.
		Delete("tags").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete tag: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "tag", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tag %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func missingValues(values []string, found map[string]domain.Tag) []string {
	var missing []string
	for _, v := range values {
		if _, ok := found[v]; !ok {
			missing = append(missing, v)
		}
	}
	return missing
}
