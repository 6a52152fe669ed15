package association

import (
	"context"
	"sync"

	"github.com/heartmarshall/ledger-tags/internal/domain"
)

var (
	_ transactionRepo = &transactionRepoMock{}
	_ tagRepo         = &tagRepoMock{}
	_ linkRepo        = &linkRepoMock{}
	_ txManager       = &txManagerMock{}
)

type transactionRepoMock struct {
	ExistsFunc func(ctx context.Context, source domain.Source, id string) (bool, error)

	calls struct {
		Exists []struct {
			Ctx    context.Context
			Source domain.Source
			ID     string
		}
	}
	lockExists sync.RWMutex
}

func (mock *transactionRepoMock) Exists(ctx context.Context, source domain.Source, id string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("transactionRepoMock.ExistsFunc: method is nil but transactionRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Source domain.Source
		ID     string
	}{Ctx: ctx, Source: source, ID: id}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, source, id)
}

func (mock *transactionRepoMock) ExistsCalls() []struct {
	Ctx    context.Context
	Source domain.Source
	ID     string
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

type tagRepoMock struct {
	ExistByIDsFunc func(ctx context.Context, ids []int64) (map[int64]bool, error)

	calls struct {
		ExistByIDs []struct {
			Ctx context.Context
			IDs []int64
		}
	}
	lockExistByIDs sync.RWMutex
}

func (mock *tagRepoMock) ExistByIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	if mock.ExistByIDsFunc == nil {
		panic("tagRepoMock.ExistByIDsFunc: method is nil but tagRepo.ExistByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
	}{Ctx: ctx, IDs: ids}
	mock.lockExistByIDs.Lock()
	mock.calls.ExistByIDs = append(mock.calls.ExistByIDs, callInfo)
	mock.lockExistByIDs.Unlock()
	return mock.ExistByIDsFunc(ctx, ids)
}

func (mock *tagRepoMock) ExistByIDsCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	mock.lockExistByIDs.RLock()
	calls := mock.calls.ExistByIDs
	mock.lockExistByIDs.RUnlock()
	return calls
}

type linkRepoMock struct {
	DeleteByTransactionFunc func(ctx context.Context, source domain.Source, transactionID string) (int64, error)
	InsertFunc              func(ctx context.Context, source domain.Source, transactionID string, tagIDs []int64) (int64, error)

	calls struct {
		DeleteByTransaction []struct {
			Ctx           context.Context
			Source        domain.Source
			TransactionID string
		}
		Insert []struct {
			Ctx           context.Context
			Source        domain.Source
			TransactionID string
			TagIDs        []int64
		}
	}
	lockDeleteByTransaction sync.RWMutex
	lockInsert              sync.RWMutex
}

func (mock *linkRepoMock) DeleteByTransaction(ctx context.Context, source domain.Source, transactionID string) (int64, error) {
	if mock.DeleteByTransactionFunc == nil {
		panic("linkRepoMock.DeleteByTransactionFunc: method is nil but linkRepo.DeleteByTransaction was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		Source        domain.Source
		TransactionID string
	}{Ctx: ctx, Source: source, TransactionID: transactionID}
	mock.lockDeleteByTransaction.Lock()
	mock.calls.DeleteByTransaction = append(mock.calls.DeleteByTransaction, callInfo)
	mock.lockDeleteByTransaction.Unlock()
	return mock.DeleteByTransactionFunc(ctx, source, transactionID)
}

func (mock *linkRepoMock) DeleteByTransactionCalls() []struct {
	Ctx           context.Context
	Source        domain.Source
	TransactionID string
} {
	mock.lockDeleteByTransaction.RLock()
	calls := mock.calls.DeleteByTransaction
	mock.lockDeleteByTransaction.RUnlock()
	return calls
}

func (mock *linkRepoMock) Insert(ctx context.Context, source domain.Source, transactionID string, tagIDs []int64) (int64, error) {
	if mock.InsertFunc == nil {
		panic("linkRepoMock.InsertFunc: method is nil but linkRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		Source        domain.Source
		TransactionID string
		TagIDs        []int64
	}{Ctx: ctx, Source: source, TransactionID: transactionID, TagIDs: tagIDs}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, source, transactionID, tagIDs)
}

func (mock *linkRepoMock) InsertCalls() []struct {
	Ctx           context.Context
	Source        domain.Source
	TransactionID string
	TagIDs        []int64
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
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
