package domain

import (
	"strings"
)

// CleanText drops invalid UTF-8 sequences and NUL bytes, neither of which a
// PostgreSQL text value can hold.
func CleanText(s string) string {
	return strings.ReplaceAll(strings.ToValidUTF8(s, ""), "\x00", "")
}

// ParseTagText splits free text into tag values:
//   - drops invalid UTF-8 and NUL bytes
//   - splits on any whitespace
//   - drops empty fields
//   - removes duplicates, keeping the first occurrence
//
// Case is preserved; "Food" and "food" are different tags.
func ParseTagText(text string) []string {
	fields := strings.Fields(CleanText(text))
	if len(fields) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(fields))
	values := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		values = append(values, f)
	}
	return values
}

// UniqueIDs removes duplicate ids, keeping the first occurrence.
func UniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
