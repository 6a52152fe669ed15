// Package filter turns untrusted ledger query criteria into a normalized
// domain.TransactionFilter. It never fails: malformed criteria are dropped
// and the query degrades to a less filtered result.
package filter

import (
	"strings"
	"time"

	"github.com/heartmarshall/ledger-tags/internal/domain"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// Criteria holds raw criteria exactly as supplied by the caller.
type Criteria struct {
	Search   string
	Tags     string
	DateFrom string
	DateTo   string
}

// Compile normalizes criteria:
//   - Invalid UTF-8 and NUL bytes are dropped from every field.
//   - Search is trimmed; empty means no text filter.
//   - Tags is split on whitespace and deduplicated.
//   - DateFrom becomes an inclusive bound at 00:00 UTC of that day.
//   - DateTo includes its whole day, so it becomes an exclusive bound at
//     00:00 UTC of the following day.
//
// Dates that do not parse as YYYY-MM-DD are ignored.
func Compile(c Criteria) domain.TransactionFilter {
	var f domain.TransactionFilter

	f.Search = strings.TrimSpace(domain.CleanText(c.Search))

	if tags := domain.ParseTagText(c.Tags); len(tags) > 0 {
		f.Tags = tags
	}

	if from, ok := parseDate(c.DateFrom); ok {
		f.From = &from
	}

	if to, ok := parseDate(c.DateTo); ok {
		until := to.AddDate(0, 0, 1)
		f.Until = &until
	}

	return f
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(domain.CleanText(raw))
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
