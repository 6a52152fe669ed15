package ledger

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ledger-tags/internal/domain"
	"github.com/heartmarshall/ledger-tags/internal/filter"
)

// GetAmexTransactions returns the normalized Amex rows matching f, newest first.
func (s *Service) GetAmexTransactions(ctx context.Context, f domain.TransactionFilter) ([]domain.NormalizedTransaction, error) {
	return s.getSource(ctx, domain.SourceAmex, f)
}

// GetStarlingTransactions returns the normalized Starling rows matching f, newest first.
func (s *Service) GetStarlingTransactions(ctx context.Context, f domain.TransactionFilter) ([]domain.NormalizedTransaction, error) {
	return s.getSource(ctx, domain.SourceStarling, f)
}

// GetAllTransactions returns the rows of every source matching f, merged
// newest first. Rows with equal timestamps keep source order, then the
// per-source order.
func (s *Service) GetAllTransactions(ctx context.Context, f domain.TransactionFilter) ([]domain.NormalizedTransaction, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	perSource := make([][]domain.NormalizedTransaction, len(domain.Sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, source := range domain.Sources {
		g.Go(func() error {
			rows, err := s.find(gctx, source, f)
			if err != nil {
				return err
			}
			perSource[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(perSource...), nil
}

// QueryTransactions compiles untrusted criteria and reads the scope.
// Malformed criteria never fail the query.
func (s *Service) QueryTransactions(ctx context.Context, scope domain.Scope, c filter.Criteria) ([]domain.NormalizedTransaction, error) {
	f := filter.Compile(c)

	switch scope {
	case domain.ScopeAmex:
		return s.GetAmexTransactions(ctx, f)
	case domain.ScopeStarling:
		return s.GetStarlingTransactions(ctx, f)
	case domain.ScopeAll:
		return s.GetAllTransactions(ctx, f)
	default:
		return nil, domain.NewValidationError("source", "must be one of: amex, starling, all")
	}
}

func (s *Service) getSource(ctx context.Context, source domain.Source, f domain.TransactionFilter) ([]domain.NormalizedTransaction, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	return s.find(ctx, source, f)
}

func (s *Service) find(ctx context.Context, source domain.Source, f domain.TransactionFilter) ([]domain.NormalizedTransaction, error) {
	rows, err := s.transactions.Find(ctx, source, f)
	if err != nil {
		return nil, fmt.Errorf("find %s transactions: %w", source, err)
	}
	return domain.NormalizeAll(rows), nil
}

// merge concatenates the lists in argument order and sorts the result by
// date, newest first. The sort is stable.
func merge(lists ...[]domain.NormalizedTransaction) []domain.NormalizedTransaction {
	n := 0
	for _, l := range lists {
		n += len(l)
	}

	out := make([]domain.NormalizedTransaction, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
