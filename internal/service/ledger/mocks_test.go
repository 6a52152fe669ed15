package ledger

import (
	"context"
	"sync"

	"github.com/heartmarshall/ledger-tags/internal/domain"
	"github.com/heartmarshall/ledger-tags/internal/service/association"
	"github.com/heartmarshall/ledger-tags/internal/service/tag"
)

var (
	_ transactionRepo = &transactionRepoMock{}
	_ tagUpserter     = &tagUpserterMock{}
	_ tagReplacer     = &tagReplacerMock{}
	_ txManager       = &txManagerMock{}
)

type transactionRepoMock struct {
	FindFunc func(ctx context.Context, source domain.Source, f domain.TransactionFilter) ([]domain.Transaction, error)

	calls struct {
		Find []struct {
			Ctx    context.Context
			Source domain.Source
			F      domain.TransactionFilter
		}
	}
	lockFind sync.RWMutex
}

func (mock *transactionRepoMock) Find(ctx context.Context, source domain.Source, f domain.TransactionFilter) ([]domain.Transaction, error) {
	if mock.FindFunc == nil {
		panic("transactionRepoMock.FindFunc: method is nil but transactionRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Source domain.Source
		F      domain.TransactionFilter
	}{Ctx: ctx, Source: source, F: f}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, source, f)
}

func (mock *transactionRepoMock) FindCalls() []struct {
	Ctx    context.Context
	Source domain.Source
	F      domain.TransactionFilter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

type tagUpserterMock struct {
	UpsertTagsFunc func(ctx context.Context, input tag.UpsertTagsInput) ([]domain.Tag, error)

	calls struct {
		UpsertTags []struct {
			Ctx   context.Context
			Input tag.UpsertTagsInput
		}
	}
	lockUpsertTags sync.RWMutex
}

func (mock *tagUpserterMock) UpsertTags(ctx context.Context, input tag.UpsertTagsInput) ([]domain.Tag, error) {
	if mock.UpsertTagsFunc == nil {
		panic("tagUpserterMock.UpsertTagsFunc: method is nil but tagUpserter.UpsertTags was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tag.UpsertTagsInput
	}{Ctx: ctx, Input: input}
	mock.lockUpsertTags.Lock()
	mock.calls.UpsertTags = append(mock.calls.UpsertTags, callInfo)
	mock.lockUpsertTags.Unlock()
	return mock.UpsertTagsFunc(ctx, input)
}

func (mock *tagUpserterMock) UpsertTagsCalls() []struct {
	Ctx   context.Context
	Input tag.UpsertTagsInput
} {
	mock.lockUpsertTags.RLock()
	calls := mock.calls.UpsertTags
	mock.lockUpsertTags.RUnlock()
	return calls
}

type tagReplacerMock struct {
	ReplaceTagsFunc func(ctx context.Context, input association.ReplaceTagsInput) error

	calls struct {
		ReplaceTags []struct {
			Ctx   context.Context
			Input association.ReplaceTagsInput
		}
	}
	lockReplaceTags sync.RWMutex
}

func (mock *tagReplacerMock) ReplaceTags(ctx context.Context, input association.ReplaceTagsInput) error {
	if mock.ReplaceTagsFunc == nil {
		panic("tagReplacerMock.ReplaceTagsFunc: method is nil but tagReplacer.ReplaceTags was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input association.ReplaceTagsInput
	}{Ctx: ctx, Input: input}
	mock.lockReplaceTags.Lock()
	mock.calls.ReplaceTags = append(mock.calls.ReplaceTags, callInfo)
	mock.lockReplaceTags.Unlock()
	return mock.ReplaceTagsFunc(ctx, input)
}

func (mock *tagReplacerMock) ReplaceTagsCalls() []struct {
	Ctx   context.Context
	Input association.ReplaceTagsInput
} {
	mock.lockReplaceTags.RLock()
	calls := mock.calls.ReplaceTags
	mock.lockReplaceTags.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
