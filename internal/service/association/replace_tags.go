package association

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ledger-tags/internal/domain"
)

// ReplaceTags makes TagIDs the complete tag set of the transaction.
// An empty TagIDs clears every tag. The delete and the insert share one
// database transaction, so readers see either the old set or the new one.
func (s *Service) ReplaceTags(ctx context.Context, input ReplaceTagsInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	tagIDs := domain.UniqueIDs(input.TagIDs)

	var removed, added int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.transactions.Exists(txCtx, input.Source, input.TransactionID)
		if err != nil {
			return fmt.Errorf("check transaction: %w", err)
		}
		if !exists {
			return fmt.Errorf("%s transaction %s: %w", input.Source, input.TransactionID, domain.ErrNotFound)
		}

		if len(tagIDs) > 0 {
			found, err := s.tags.ExistByIDs(txCtx, tagIDs)
			if err != nil {
				return fmt.Errorf("check tags: %w", err)
			}
			for _, id := range tagIDs {
				if !found[id] {
					return fmt.Errorf("tag %d: %w", id, domain.ErrNotFound)
				}
			}
		}

		removed, err = s.links.DeleteByTransaction(txCtx, input.Source, input.TransactionID)
		if err != nil {
			return fmt.Errorf("delete links: %w", err)
		}

		added, err = s.links.Insert(txCtx, input.Source, input.TransactionID, tagIDs)
		if err != nil {
			return fmt.Errorf("insert links: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.DebugContext(ctx, "transaction tags replaced",
		slog.String("source", input.Source.String()),
		slog.String("transaction_id", input.TransactionID),
		slog.Any("tag_ids", tagIDs),
		slog.Int64("links_removed", removed),
		slog.Int64("links_added", added),
	)

	return nil
}
