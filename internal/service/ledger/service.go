// Package ledger serves the unified, normalized transaction feed and the
// tag update flow that returns it.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/ledger-tags/internal/domain"
	"github.com/heartmarshall/ledger-tags/internal/service/association"
	"github.com/heartmarshall/ledger-tags/internal/service/tag"
)

type transactionRepo interface {
	Find(ctx context.Context, source domain.Source, f domain.TransactionFilter) ([]domain.Transaction, error)
}

type tagUpserter interface {
	UpsertTags(ctx context.Context, input tag.UpsertTagsInput) ([]domain.Tag, error)
}

type tagReplacer interface {
	ReplaceTags(ctx context.Context, input association.ReplaceTagsInput) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the ledger read and tag update operations.
type Service struct {
	transactions transactionRepo
	tags         tagUpserter
	associations tagReplacer
	tx           txManager
	queryTimeout time.Duration
	log          *slog.Logger
}

// NewService creates a new Ledger service.
func NewService(
	log *slog.Logger,
	transactions transactionRepo,
	tags tagUpserter,
	associations tagReplacer,
	tx txManager,
	queryTimeout time.Duration,
) *Service {
	return &Service{
		transactions: transactions,
		tags:         tags,
		associations: associations,
		tx:           tx,
		queryTimeout: queryTimeout,
		log:          log.With("service", "ledger"),
	}
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
