package domain

import "time"

// TransactionFilter is a compiled, source-independent ledger predicate.
// Zero values mean "no constraint".
type TransactionFilter struct {
	// Search is a case-insensitive substring of the description.
	Search string

	// Tags matches transactions carrying at least one of the values.
	Tags []string

	// From is the inclusive lower bound on occurrence time.
	From *time.Time

	// Until is the exclusive upper bound on occurrence time.
	Until *time.Time
}

// IsEmpty reports whether the filter constrains nothing.
func (f TransactionFilter) IsEmpty() bool {
	return f.Search == "" && len(f.Tags) == 0 && f.From == nil && f.Until == nil
}
