package transaction

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/ledger-tags/internal/adapter/postgres"
	"github.com/heartmarshall/ledger-tags/internal/domain"
)

// likeEscaper escapes the LIKE metacharacters with the default escape
// character, so a search for "50%" matches the literal text.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// applyFilter appends the WHERE conditions of f to a query over schema's
// table aliased as tx. All conditions are ANDed; the tag condition is
// satisfied by any one of the requested values.
func applyFilter(b sq.SelectBuilder, schema postgres.SourceSchema, f domain.TransactionFilter) sq.SelectBuilder {
	if f.IsEmpty() {
		return b
	}

	if f.Search != "" {
		b = b.Where(sq.ILike{schema.Col(schema.DescriptionColumn): "%" + escapeLike(f.Search) + "%"})
	}

	if len(f.Tags) > 0 {
		b = b.Where(sq.Expr(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s l JOIN tags t ON t.id = l.tag_id WHERE l.transaction_id = %s AND t.value = ANY(?))",
			schema.LinkTable, schema.Col(schema.IDColumn),
		), f.Tags))
	}

	if f.From != nil {
		b = b.Where(sq.GtOrEq{schema.Col(schema.TimeColumn): *f.From})
	}

	if f.Until != nil {
		b = b.Where(sq.Lt{schema.Col(schema.TimeColumn): *f.Until})
	}

	return b
}
