package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ledger-tags/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAmex inserts an Amex row and returns it as a domain.Transaction.
// An empty id is replaced with a unique reference.
func SeedAmex(t *testing.T, pool *pgxpool.Pool, id string, at time.Time, minorUnits int64, description string) domain.Transaction {
	t.Helper()

	if id == "" {
		id = "AMX-" + UniqueSuffix()
	}
	at = at.UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO amex_transactions (reference, date, description, amount) VALUES ($1, $2, $3, $4)`,
		id, at, description, minorUnits,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAmex insert: %v", err)
	}

	return domain.Transaction{
		ID:               id,
		Source:           domain.SourceAmex,
		OccurredAt:       at,
		AmountMinorUnits: minorUnits,
		Direction:        domain.DirectionOut,
		Description:      description,
	}
}

// SeedStarling inserts a Starling row and returns it as a domain.Transaction.
// An empty id is replaced with a unique feed item uid.
func SeedStarling(t *testing.T, pool *pgxpool.Pool, id string, at time.Time, minorUnits int64, dir domain.Direction, counterParty string) domain.Transaction {
	t.Helper()

	if id == "" {
		id = uuid.New().String()
	}
	at = at.UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO starling_transactions (feed_item_uid, transaction_time, counter_party_name, amount_minor_units, direction)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, at, counterParty, minorUnits, string(dir),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStarling insert: %v", err)
	}

	return domain.Transaction{
		ID:               id,
		Source:           domain.SourceStarling,
		OccurredAt:       at,
		AmountMinorUnits: minorUnits,
		Direction:        dir,
		Description:      counterParty,
	}
}

// SeedTag inserts a tag with the given value and returns it.
func SeedTag(t *testing.T, pool *pgxpool.Pool, value string) domain.Tag {
	t.Helper()

	var tag domain.Tag
	err := pool.QueryRow(context.Background(),
		`INSERT INTO tags (value) VALUES ($1) RETURNING id, value, created_at`,
		value,
	).Scan(&tag.ID, &tag.Value, &tag.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert: %v", err)
	}

	return tag
}

// SeedLink attaches a tag to a transaction of the given source.
func SeedLink(t *testing.T, pool *pgxpool.Pool, source domain.Source, transactionID string, tagID int64) {
	t.Helper()

	table := "amex_transactions_tags"
	if source == domain.SourceStarling {
		table = "starling_transactions_tags"
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO `+table+` (transaction_id, tag_id) VALUES ($1, $2)`,
		transactionID, tagID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLink insert: %v", err)
	}
}

// LinkedTagIDs returns the tag ids linked to a transaction, ascending.
func LinkedTagIDs(t *testing.T, pool *pgxpool.Pool, source domain.Source, transactionID string) []int64 {
	t.Helper()

	table := "amex_transactions_tags"
	if source == domain.SourceStarling {
		table = "starling_transactions_tags"
	}

	rows, err := pool.Query(context.Background(),
		`SELECT tag_id FROM `+table+` WHERE transaction_id = $1 ORDER BY tag_id`,
		transactionID,
	)
	if err != nil {
		t.Fatalf("testhelper: LinkedTagIDs query: %v", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("testhelper: LinkedTagIDs scan: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("testhelper: LinkedTagIDs rows: %v", err)
	}
	return ids
}
