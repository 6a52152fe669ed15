package tag

import "github.com/heartmarshall/ledger-tags/internal/domain"

// UpsertTagsInput holds free tag text, e.g. "food groceries".
type UpsertTagsInput struct {
	Text string
}

// Values returns the parsed, deduplicated tag values.
func (i UpsertTagsInput) Values() []string {
	return domain.ParseTagText(i.Text)
}

// DeleteTagInput holds the parameters for deleting a tag.
type DeleteTagInput struct {
	ID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteTagInput) Validate() error {
	if i.ID <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}
	return nil
}
