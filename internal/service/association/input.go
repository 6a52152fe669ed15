package association

import (
	"strings"

	"github.com/heartmarshall/ledger-tags/internal/domain"
)

// ReplaceTagsInput holds the new complete tag set of one transaction.
type ReplaceTagsInput struct {
	Source        domain.Source
	TransactionID string
	TagIDs        []int64
}

// Validate checks all fields and collects all errors.
func (i ReplaceTagsInput) Validate() error {
	var errs []domain.FieldError

	if !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be one of: amex, starling"})
	}
	if strings.TrimSpace(i.TransactionID) == "" {
		errs = append(errs, domain.FieldError{Field: "transaction_id", Message: "required"})
	}
	for _, id := range i.TagIDs {
		if id <= 0 {
			errs = append(errs, domain.FieldError{Field: "tag_ids", Message: "must be positive integers"})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
