package tag

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/ledger-tags/internal/domain"
)

type tagRepo interface {
	List(ctx context.Context) ([]domain.Tag, error)
	Upsert(ctx context.Context, values []string) ([]domain.Tag, error)
	CountLinks(ctx context.Context, id int64) (int, error)
	Delete(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides tag management operations.
type Service struct {
	tags         tagRepo
	tx           txManager
	queryTimeout time.Duration
	log          *slog.Logger
}

// NewService creates a new Tag service. A zero queryTimeout leaves database
// calls bounded only by the caller's context.
func NewService(
	log *slog.Logger,
	tags tagRepo,
	tx txManager,
	queryTimeout time.Duration,
) *Service {
	return &Service{
		tags:         tags,
		tx:           tx,
		queryTimeout: queryTimeout,
		log:          log.With("service", "tag"),
	}
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
