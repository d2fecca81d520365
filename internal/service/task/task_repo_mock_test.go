package task

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.Task, error)
	ListByOwnerFunc   func(ctx context.Context, ownerID int64) ([]domain.Task, error)
	ListAllFunc       func(ctx context.Context) ([]domain.Task, error)
	CreateFunc        func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	UpdateDetailsFunc func(ctx context.Context, id int64, title, description string, priority domain.TaskPriority) (*domain.Task, error)
	UpdateStatusFunc  func(ctx context.Context, id int64, status domain.TaskStatus, startedAt, completedAt *time.Time) (*domain.Task, error)
	DeleteFunc        func(ctx context.Context, id int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID int64
		}
		ListAll []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx  context.Context
			Task *domain.Task
		}
		UpdateDetails []struct {
			Ctx         context.Context
			ID          int64
			Title       string
			Description string
			Priority    domain.TaskPriority
		}
		UpdateStatus []struct {
			Ctx         context.Context
			ID          int64
			Status      domain.TaskStatus
			StartedAt   *time.Time
			CompletedAt *time.Time
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID       sync.RWMutex
	lockListByOwner   sync.RWMutex
	lockListAll       sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdateDetails sync.RWMutex
	lockUpdateStatus  sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *taskRepoMock) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
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

func (mock *taskRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *taskRepoMock) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	if mock.ListByOwnerFunc == nil {
		panic("taskRepoMock.ListByOwnerFunc: method is nil but taskRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *taskRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID int64
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *taskRepoMock) ListAll(ctx context.Context) ([]domain.Task, error) {
	if mock.ListAllFunc == nil {
		panic("taskRepoMock.ListAllFunc: method is nil but taskRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *taskRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *taskRepoMock) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Task *domain.Task
	}{Ctx: ctx, Task: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *taskRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Task *domain.Task
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *taskRepoMock) UpdateDetails(ctx context.Context, id int64, title, description string, priority domain.TaskPriority) (*domain.Task, error) {
	if mock.UpdateDetailsFunc == nil {
		panic("taskRepoMock.UpdateDetailsFunc: method is nil but taskRepo.UpdateDetails was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          int64
		Title       string
		Description string
		Priority    domain.TaskPriority
	}{Ctx: ctx, ID: id, Title: title, Description: description, Priority: priority}
	mock.lockUpdateDetails.Lock()
	mock.calls.UpdateDetails = append(mock.calls.UpdateDetails, callInfo)
	mock.lockUpdateDetails.Unlock()
	return mock.UpdateDetailsFunc(ctx, id, title, description, priority)
}

func (mock *taskRepoMock) UpdateDetailsCalls() []struct {
	Ctx         context.Context
	ID          int64
	Title       string
	Description string
	Priority    domain.TaskPriority
} {
	mock.lockUpdateDetails.RLock()
	calls := mock.calls.UpdateDetails
	mock.lockUpdateDetails.RUnlock()
	return calls
}

func (mock *taskRepoMock) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus, startedAt, completedAt *time.Time) (*domain.Task, error) {
	if mock.UpdateStatusFunc == nil {
		panic("taskRepoMock.UpdateStatusFunc: method is nil but taskRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          int64
		Status      domain.TaskStatus
		StartedAt   *time.Time
		CompletedAt *time.Time
	}{Ctx: ctx, ID: id, Status: status, StartedAt: startedAt, CompletedAt: completedAt}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, startedAt, completedAt)
}

func (mock *taskRepoMock) UpdateStatusCalls() []struct {
	Ctx         context.Context
	ID          int64
	Status      domain.TaskStatus
	StartedAt   *time.Time
	CompletedAt *time.Time
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *taskRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("taskRepoMock.DeleteFunc: method is nil but taskRepo.Delete was just called")
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

func (mock *taskRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
