package tag

import (
	"context"
	"sync"

	"github.com/heartmarshall/ledger-tags/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	CountLinksFunc func(ctx context.Context, id int64) (int, error)
	DeleteFunc     func(ctx context.Context, id int64) error
	ListFunc       func(ctx context.Context) ([]domain.Tag, error)
	UpsertFunc     func(ctx context.Context, values []string) ([]domain.Tag, error)

	calls struct {
		CountLinks []struct {
			Ctx context.Context
			ID  int64
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		List []struct {
			Ctx context.Context
		}
		Upsert []struct {
			Ctx    context.Context
			Values []string
		}
	}
	lockCountLinks sync.RWMutex
	lockDelete     sync.RWMutex
	lockList       sync.RWMutex
	lockUpsert     sync.RWMutex
}

func (mock *tagRepoMock) CountLinks(ctx context.Context, id int64) (int, error) {
	if mock.CountLinksFunc == nil {
		panic("tagRepoMock.CountLinksFunc: method is nil but tagRepo.CountLinks was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockCountLinks.Lock()
	mock.calls.CountLinks = append(mock.calls.CountLinks, callInfo)
	mock.lockCountLinks.Unlock()
	return mock.CountLinksFunc(ctx, id)
}

func (mock *tagRepoMock) CountLinksCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockCountLinks.RLock()
	calls := mock.calls.CountLinks
	mock.lockCountLinks.RUnlock()
	return calls
}

func (mock *tagRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("tagRepoMock.DeleteFunc: method is nil but tagRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *tagRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *tagRepoMock) List(ctx context.Context) ([]domain.Tag, error) {
	if mock.ListFunc == nil {
		panic("tagRepoMock.ListFunc: method is nil but tagRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *tagRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *tagRepoMock) Upsert(ctx context.Context, values []string) ([]domain.Tag, error) {
	if mock.UpsertFunc == nil {
		panic("tagRepoMock.UpsertFunc: method is nil but tagRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Values []string
	}{Ctx: ctx, Values: values}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, values)
}

func (mock *tagRepoMock) UpsertCalls() []struct {
	Ctx    context.Context
	Values []string
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
