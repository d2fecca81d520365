package history

import (
	"context"
	"sync"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.HistoryEntry, error)
	ListByActorFunc      func(ctx context.Context, actorID int64) ([]domain.HistoryEntry, error)
	ListByTaskFunc       func(ctx context.Context, taskID int64) ([]domain.HistoryEntry, error)
	DeleteOneFunc        func(ctx context.Context, id int64) error
	DeleteAllByActorFunc func(ctx context.Context, actorID int64) (int64, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		ListByActor []struct {
			Ctx     context.Context
			ActorID int64
		}
		ListByTask []struct {
			Ctx    context.Context
			TaskID int64
		}
		DeleteOne []struct {
			Ctx context.Context
			ID  int64
		}
		DeleteAllByActor []struct {
			Ctx     context.Context
			ActorID int64
		}
	}
	lockGetByID          sync.RWMutex
	lockListByActor      sync.RWMutex
	lockListByTask       sync.RWMutex
	lockDeleteOne        sync.RWMutex
	lockDeleteAllByActor sync.RWMutex
}

func (mock *historyRepoMock) GetByID(ctx context.Context, id int64) (*domain.HistoryEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("historyRepoMock.GetByIDFunc: method is nil but historyRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *historyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *historyRepoMock) ListByActor(ctx context.Context, actorID int64) ([]domain.HistoryEntry, error) {
	if mock.ListByActorFunc == nil {
		panic("historyRepoMock.ListByActorFunc: method is nil but historyRepo.ListByActor was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID int64
	}{Ctx: ctx, ActorID: actorID}
	mock.lockListByActor.Lock()
	mock.calls.ListByActor = append(mock.calls.ListByActor, callInfo)
	mock.lockListByActor.Unlock()
	return mock.ListByActorFunc(ctx, actorID)
}

func (mock *historyRepoMock) ListByActorCalls() []struct {
	Ctx     context.Context
	ActorID int64
} {
	mock.lockListByActor.RLock()
	calls := mock.calls.ListByActor
	mock.lockListByActor.RUnlock()
	return calls
}

func (mock *historyRepoMock) ListByTask(ctx context.Context, taskID int64) ([]domain.HistoryEntry, error) {
	if mock.ListByTaskFunc == nil {
		panic("historyRepoMock.ListByTaskFunc: method is nil but historyRepo.ListByTask was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID int64
	}{Ctx: ctx, TaskID: taskID}
	mock.lockListByTask.Lock()
	mock.calls.ListByTask = append(mock.calls.ListByTask, callInfo)
	mock.lockListByTask.Unlock()
	return mock.ListByTaskFunc(ctx, taskID)
}

func (mock *historyRepoMock) ListByTaskCalls() []struct {
	Ctx    context.Context
	TaskID int64
} {
	mock.lockListByTask.RLock()
	calls := mock.calls.ListByTask
	mock.lockListByTask.RUnlock()
	return calls
}

func (mock *historyRepoMock) DeleteOne(ctx context.Context, id int64) error {
	if mock.DeleteOneFunc == nil {
		panic("historyRepoMock.DeleteOneFunc: method is nil but historyRepo.DeleteOne was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteOne.Lock()
	mock.calls.DeleteOne = append(mock.calls.DeleteOne, callInfo)
	mock.lockDeleteOne.Unlock()
	return mock.DeleteOneFunc(ctx, id)
}

func (mock *historyRepoMock) DeleteOneCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteOne.RLock()
	calls := mock.calls.DeleteOne
	mock.lockDeleteOne.RUnlock()
	return calls
}

func (mock *historyRepoMock) DeleteAllByActor(ctx context.Context, actorID int64) (int64, error) {
	if mock.DeleteAllByActorFunc == nil {
		panic("historyRepoMock.DeleteAllByActorFunc: method is nil but historyRepo.DeleteAllByActor was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID int64
	}{Ctx: ctx, ActorID: actorID}
	mock.lockDeleteAllByActor.Lock()
	mock.calls.DeleteAllByActor = append(mock.calls.DeleteAllByActor, callInfo)
	mock.lockDeleteAllByActor.Unlock()
	return mock.DeleteAllByActorFunc(ctx, actorID)
}

func (mock *historyRepoMock) DeleteAllByActorCalls() []struct {
	Ctx     context.Context
	ActorID int64
} {
	mock.lockDeleteAllByActor.RLock()
	calls := mock.calls.DeleteAllByActor
	mock.lockDeleteAllByActor.RUnlock()
	return calls
}
