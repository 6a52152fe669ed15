package domain

import "time"

// Tag is a free-text label. Value is globally unique and case-sensitive.
type Tag struct {
	ID        int64     `db:"id"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
}

// TagIDs returns the ids of tags in order.
func TagIDs(tags []Tag) []int64 {
	ids := make([]int64, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	return ids
}
