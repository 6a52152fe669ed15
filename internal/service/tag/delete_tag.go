package tag

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteTag removes a tag together with its links in every source.
func (s *Service) DeleteTag(ctx context.Context, input DeleteTagInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	var links int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.tags.CountLinks(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("count links: %w", err)
		}
		links = n

		if err := s.tags.Delete(txCtx, input.ID); err != nil {
			return fmt.Errorf("delete tag: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tag deleted",
		slog.Int64("tag_id", input.ID),
		slog.Int("links_removed", links),
	)

	return nil
}
