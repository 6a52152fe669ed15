package postgres

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/ledger-tags/internal/domain"
)

// Builder is the statement builder shared by all repositories.
// PostgreSQL uses $1, $2, ... placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SourceSchema describes where a source keeps its transactions and tag links.
// All names are compile-time constants; user input never reaches them.
type SourceSchema struct {
	Source            domain.Source
	Table             string
	LinkTable         string
	IDColumn          string
	TimeColumn        string
	DescriptionColumn string
	AmountColumn      string
	// DirectionExpr yields 'IN' or 'OUT' for a row aliased as tx.
	DirectionExpr string
}

var sourceSchemas = map[domain.Source]SourceSchema{
	domain.SourceAmex: {
		Source:            domain.SourceAmex,
		Table:             "amex_transactions",
		LinkTable:         "amex_transactions_tags",
		IDColumn:          "reference",
		TimeColumn:        "date",
		DescriptionColumn: "description",
		AmountColumn:      "amount",
		DirectionExpr:     "'OUT'",
	},
	domain.SourceStarling: {
		Source:            domain.SourceStarling,
		Table:             "starling_transactions",
		LinkTable:         "starling_transactions_tags",
		IDColumn:          "feed_item_uid",
		TimeColumn:        "transaction_time",
		DescriptionColumn: "counter_party_name",
		AmountColumn:      "amount_minor_units",
		DirectionExpr:     "tx.direction",
	},
}

// SchemaFor returns the table layout of a source.
func SchemaFor(source domain.Source) (SourceSchema, error) {
	s, ok := sourceSchemas[source]
	if !ok {
		return SourceSchema{}, domain.NewValidationError("source", "unknown source "+string(source))
	}
	return s, nil
}

// LinkTables returns every per-source tag link table.
func LinkTables() []string {
	tables := make([]string, 0, len(domain.Sources))
	for _, s := range domain.Sources {
		tables = append(tables, sourceSchemas[s].LinkTable)
	}
	return tables
}

// Col qualifies a column with the tx alias used by ledger queries.
func (s SourceSchema) Col(column string) string {
	return "tx." + column
}
