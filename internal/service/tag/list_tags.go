package tag

import (
	"context"
	"fmt"

	"github.com/heartmarshall/ledger-tags/internal/domain"
)

// ListTags returns every tag in creation order.
func (s *Service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
