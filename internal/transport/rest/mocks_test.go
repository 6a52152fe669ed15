package rest

import (
	"context"

	"github.com/heartmarshall/ledger-tags/internal/domain"
	"github.com/heartmarshall/ledger-tags/internal/filter"
	"github.com/heartmarshall/ledger-tags/internal/service/ledger"
	"github.com/heartmarshall/ledger-tags/internal/service/tag"
)

var (
	_ tagService    = &tagServiceMock{}
	_ ledgerService = &ledgerServiceMock{}
)

type tagServiceMock struct {
	ListTagsFunc   func(ctx context.Context) ([]domain.Tag, error)
	UpsertTagsFunc func(ctx context.Context, input tag.UpsertTagsInput) ([]domain.Tag, error)
	DeleteTagFunc  func(ctx context.Context, input tag.DeleteTagInput) error

	upsertCalls []tag.UpsertTagsInput
	deleteCalls []tag.DeleteTagInput
}

func (m *tagServiceMock) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return m.ListTagsFunc(ctx)
}

func (m *tagServiceMock) UpsertTags(ctx context.Context, input tag.UpsertTagsInput) ([]domain.Tag, error) {
	m.upsertCalls = append(m.upsertCalls, input)
	return m.UpsertTagsFunc(ctx, input)
}

func (m *tagServiceMock) DeleteTag(ctx context.Context, input tag.DeleteTagInput) error {
	m.deleteCalls = append(m.deleteCalls, input)
	return m.DeleteTagFunc(ctx, input)
}

type queryCall struct {
	Scope    domain.Scope
	Criteria filter.Criteria
}

type ledgerServiceMock struct {
	QueryTransactionsFunc     func(ctx context.Context, scope domain.Scope, c filter.Criteria) ([]domain.NormalizedTransaction, error)
	UpdateTransactionTagsFunc func(ctx context.Context, input ledger.UpdateTransactionTagsInput) ([]domain.NormalizedTransaction, error)

	queryCalls  []queryCall
	updateCalls []ledger.UpdateTransactionTagsInput
}

func (m *ledgerServiceMock) QueryTransactions(ctx context.Context, scope domain.Scope, c filter.Criteria) ([]domain.NormalizedTransaction, error) {
	m.queryCalls = append(m.queryCalls, queryCall{Scope: scope, Criteria: c})
	return m.QueryTransactionsFunc(ctx, scope, c)
}

func (m *ledgerServiceMock) UpdateTransactionTags(ctx context.Context, input ledger.UpdateTransactionTagsInput) ([]domain.NormalizedTransaction, error) {
	m.updateCalls = append(m.updateCalls, input)
	return m.UpdateTransactionTagsFunc(ctx, input)
}
