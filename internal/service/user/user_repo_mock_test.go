package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListFunc         func(ctx context.Context) ([]domain.User, error)
	UpdateDataFunc   func(ctx context.Context, id int64, name, email string, role domain.UserRole) (*domain.User, error)
	UpdateStatusFunc func(ctx context.Context, id int64, active bool) error
	DeleteFunc       func(ctx context.Context, id int64) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		UpdateData []struct {
			Ctx   context.Context
			ID    int64
			Name  string
			Email string
			Role  domain.UserRole
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     int64
			Active bool
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockList         sync.RWMutex
	lockUpdateData   sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateData(ctx context.Context, id int64, name, email string, role domain.UserRole) (*domain.User, error) {
	if mock.UpdateDataFunc == nil {
		panic("userRepoMock.UpdateDataFunc: method is nil but userRepo.UpdateData was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    int64
		Name  string
		Email string
		Role  domain.UserRole
	}{Ctx: ctx, ID: id, Name: name, Email: email, Role: role}
	mock.lockUpdateData.Lock()
	mock.calls.UpdateData = append(mock.calls.UpdateData, callInfo)
	mock.lockUpdateData.Unlock()
	return mock.UpdateDataFunc(ctx, id, name, email, role)
}

func (mock *userRepoMock) UpdateDataCalls() []struct {
	Ctx   context.Context
	ID    int64
	Name  string
	Email string
	Role  domain.UserRole
} {
	mock.lockUpdateData.RLock()
	calls := mock.calls.UpdateData
	mock.lockUpdateData.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateStatus(ctx context.Context, id int64, active bool) error {
	if mock.UpdateStatusFunc == nil {
		panic("userRepoMock.UpdateStatusFunc: method is nil but userRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Active bool
	}{Ctx: ctx, ID: id, Active: active}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, active)
}

func (mock *userRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     int64
	Active bool
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
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

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
