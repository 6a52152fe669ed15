package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// minorUnitExp converts minor currency units (pence, cents) into major units.
const minorUnitExp = -2

// Transaction is a row from one of the source feeds together with its
// aggregated tags. It is owned by the import pipelines and read-only here.
type Transaction struct {
	ID               string
	Source           Source
	OccurredAt       time.Time
	AmountMinorUnits int64
	// Direction is only meaningful for Starling; Amex rows are always OUT.
	Direction   Direction
	Description string
	// Tags holds the attached tag values joined by a single space.
	Tags string
}

// NormalizedTransaction is the source-independent ledger row.
// Amount is positive for spend and negative for money received.
type NormalizedTransaction struct {
	ID          string
	Source      Source
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Tags        string
}

// DateMillis returns Date as milliseconds since the Unix epoch.
func (n NormalizedTransaction) DateMillis() int64 {
	return n.Date.UnixMilli()
}

// Normalize converts a source row into the unified representation.
// The sign convention is applied here and nowhere else.
func (t Transaction) Normalize() NormalizedTransaction {
	amount := decimal.New(t.AmountMinorUnits, minorUnitExp)
	if t.isInbound() {
		amount = amount.Neg()
	}

	return NormalizedTransaction{
		ID:          t.ID,
		Source:      t.Source,
		Date:        t.OccurredAt,
		Amount:      amount,
		Description: t.Description,
		Tags:        t.Tags,
	}
}

func (t Transaction) isInbound() bool {
	return t.Source == SourceStarling && t.Direction == DirectionIn
}

// NormalizeAll normalizes rows preserving their order.
func NormalizeAll(rows []Transaction) []NormalizedTransaction {
	out := make([]NormalizedTransaction, len(rows))
	for i, r := range rows {
		out[i] = r.Normalize()
	}
	return out
}
