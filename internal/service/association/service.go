package association

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/ledger-tags/internal/domain"
)

type transactionRepo interface {
	Exists(ctx context.Context, source domain.Source, id string) (bool, error)
}

type tagRepo interface {
	ExistByIDs(ctx context.Context, ids []int64) (map[int64]bool, error)
}

type linkRepo interface {
	DeleteByTransaction(ctx context.Context, source domain.Source, transactionID string) (int64, error)
	Insert(ctx context.Context, source domain.Source, transactionID string, tagIDs []int64) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service maintains the tag link set of individual transactions.
type Service struct {
	transactions transactionRepo
	tags         tagRepo
	links        linkRepo
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new Association service.
func NewService(
	log *slog.Logger,
	transactions transactionRepo,
	tags tagRepo,
	links linkRepo,
	tx txManager,
) *Service {
	return &Service{
		transactions: transactions,
		tags:         tags,
		links:        links,
		tx:           tx,
		log:          log.With("service", "association"),
	}
}
