package requirement

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

var _ requirementRepo = &requirementRepoMock{}

type requirementRepoMock struct {
	CreateFunc       func(ctx context.Context, req *domain.Requirement) (*domain.Requirement, error)
	GetByIDFunc      func(ctx context.Context, userID, reqID uuid.UUID) (*domain.Requirement, error)
	UpdateFunc       func(ctx context.Context, userID, reqID uuid.UUID, params domain.RequirementUpdateParams) (*domain.Requirement, error)
	DeleteFunc       func(ctx context.Context, userID, reqID uuid.UUID) error
	ListFunc         func(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*domain.Requirement, error)
	SaveProgressFunc func(ctx context.Context, reqID uuid.UUID, progress domain.Progress) error

	calls struct {
		Create []struct {
			Req *domain.Requirement
		}
		GetByID []struct {
			UserID uuid.UUID
			ReqID  uuid.UUID
		}
		Update []struct {
			UserID uuid.UUID
			ReqID  uuid.UUID
			Params domain.RequirementUpdateParams
		}
		Delete []struct {
			UserID uuid.UUID
			ReqID  uuid.UUID
		}
		List []struct {
			UserID     uuid.UUID
			ActiveOnly bool
		}
		SaveProgress []struct {
			ReqID    uuid.UUID
			Progress domain.Progress
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockList         sync.RWMutex
	lockSaveProgress sync.RWMutex
}

func (mock *requirementRepoMock) Create(ctx context.Context, req *domain.Requirement) (*domain.Requirement, error) {
	if mock.CreateFunc == nil {
		panic("requirementRepoMock.CreateFunc: method is nil but requirementRepo.Create was just called")
	}
	callInfo := struct {
		Req *domain.Requirement
	}{Req: req}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, req)
}

func (mock *requirementRepoMock) CreateCalls() []struct {
	Req *domain.Requirement
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *requirementRepoMock) GetByID(ctx context.Context, userID, reqID uuid.UUID) (*domain.Requirement, error) {
	if mock.GetByIDFunc == nil {
		panic("requirementRepoMock.GetByIDFunc: method is nil but requirementRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ReqID  uuid.UUID
	}{UserID: userID, ReqID: reqID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, reqID)
}

func (mock *requirementRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	ReqID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *requirementRepoMock) Update(ctx context.Context, userID, reqID uuid.UUID, params domain.RequirementUpdateParams) (*domain.Requirement, error) {
	if mock.UpdateFunc == nil {
		panic("requirementRepoMock.UpdateFunc: method is nil but requirementRepo.Update was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ReqID  uuid.UUID
		Params domain.RequirementUpdateParams
	}{UserID: userID, ReqID: reqID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, reqID, params)
}

func (mock *requirementRepoMock) UpdateCalls() []struct {
	UserID uuid.UUID
	ReqID  uuid.UUID
	Params domain.RequirementUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *requirementRepoMock) Delete(ctx context.Context, userID, reqID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("requirementRepoMock.DeleteFunc: method is nil but requirementRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ReqID  uuid.UUID
	}{UserID: userID, ReqID: reqID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, reqID)
}

func (mock *requirementRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	ReqID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *requirementRepoMock) List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*domain.Requirement, error) {
	if mock.ListFunc == nil {
		panic("requirementRepoMock.ListFunc: method is nil but requirementRepo.List was just called")
	}
	callInfo := struct {
		UserID     uuid.UUID
		ActiveOnly bool
	}{UserID: userID, ActiveOnly: activeOnly}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, activeOnly)
}

func (mock *requirementRepoMock) ListCalls() []struct {
	UserID     uuid.UUID
	ActiveOnly bool
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *requirementRepoMock) SaveProgress(ctx context.Context, reqID uuid.UUID, progress domain.Progress) error {
	if mock.SaveProgressFunc == nil {
		panic("requirementRepoMock.SaveProgressFunc: method is nil but requirementRepo.SaveProgress was just called")
	}
	callInfo := struct {
		ReqID    uuid.UUID
		Progress domain.Progress
	}{ReqID: reqID, Progress: progress}
	mock.lockSaveProgress.Lock()
	mock.calls.SaveProgress = append(mock.calls.SaveProgress, callInfo)
	mock.lockSaveProgress.Unlock()
	return mock.SaveProgressFunc(ctx, reqID, progress)
}

func (mock *requirementRepoMock) SaveProgressCalls() []struct {
	ReqID    uuid.UUID
	Progress domain.Progress
} {
	mock.lockSaveProgress.RLock()
	calls := mock.calls.SaveProgress
	mock.lockSaveProgress.RUnlock()
	return calls
}
