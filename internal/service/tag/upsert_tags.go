package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ledger-tags/internal/domain"
)

// UpsertTags returns the tag for every value in the input text, creating
// the missing ones. Text without any value is a no-op.
func (s *Service) UpsertTags(ctx context.Context, input UpsertTagsInput) ([]domain.Tag, error) {
	values := input.Values()
	if len(values) == 0 {
		return []domain.Tag{}, nil
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	tags, err := s.tags.Upsert(ctx, values)
	if err != nil {
		return nil, fmt.Errorf("upsert tags: %w", err)
	}

	s.log.DebugContext(ctx, "tags upserted",
		slog.Int("count", len(tags)),
		slog.Any("tag_ids", domain.TagIDs(tags)),
	)

	return tags, nil
}
