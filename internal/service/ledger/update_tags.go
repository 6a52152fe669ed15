package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ledger-tags/internal/domain"
	"github.com/heartmarshall/ledger-tags/internal/filter"
	"github.com/heartmarshall/ledger-tags/internal/service/association"
	"github.com/heartmarshall/ledger-tags/internal/service/tag"
)

// UpdateTransactionTagsInput replaces the tags of one transaction with the
// values in TagText. Criteria is the filter the caller is currently viewing.
type UpdateTransactionTagsInput struct {
	Source        domain.Source
	TransactionID string
	TagText       string
	Criteria      filter.Criteria
}

// Validate checks all fields and collects all errors.
func (i UpdateTransactionTagsInput) Validate() error {
	var errs []domain.FieldError

	if !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be one of: amex, starling"})
	}
	if strings.TrimSpace(i.TransactionID) == "" {
		errs = append(errs, domain.FieldError{Field: "transaction_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTransactionTags creates any new tags, replaces the transaction's tag
// set in the same database transaction, then returns the source's list under
// the given criteria. Blank TagText clears every tag.
func (s *Service) UpdateTransactionTags(ctx context.Context, input UpdateTransactionTagsInput) ([]domain.NormalizedTransaction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	var tagIDs []int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		tags, err := s.tags.UpsertTags(txCtx, tag.UpsertTagsInput{Text: input.TagText})
		if err != nil {
			return err
		}
		tagIDs = domain.TagIDs(tags)

		return s.associations.ReplaceTags(txCtx, association.ReplaceTagsInput{
			Source:        input.Source,
			TransactionID: input.TransactionID,
			TagIDs:        tagIDs,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("update transaction tags: %w", err)
	}

	s.log.InfoContext(ctx, "transaction tags updated",
		slog.String("source", input.Source.String()),
		slog.String("transaction_id", input.TransactionID),
		slog.Any("tag_ids", tagIDs),
	)

	return s.find(ctx, input.Source, filter.Compile(input.Criteria))
}
