package selfreport

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

var _ selfReportRepo = &selfReportRepoMock{}

type selfReportRepoMock struct {
	CreateFunc  func(ctx context.Context, rec *domain.SelfReportedCredit) (*domain.SelfReportedCredit, error)
	GetByIDFunc func(ctx context.Context, userID, recID uuid.UUID) (*domain.SelfReportedCredit, error)
	UpdateFunc  func(ctx context.Context, userID, recID uuid.UUID, params domain.SelfReportedUpdateParams) (*domain.SelfReportedCredit, error)
	DeleteFunc  func(ctx context.Context, userID, recID uuid.UUID) error
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]*domain.SelfReportedCredit, error)

	calls struct {
		Create []struct {
			Rec *domain.SelfReportedCredit
		}
		GetByID []struct {
			UserID uuid.UUID
			RecID  uuid.UUID
		}
		Update []struct {
			UserID uuid.UUID
			RecID  uuid.UUID
			Params domain.SelfReportedUpdateParams
		}
		Delete []struct {
			UserID uuid.UUID
			RecID  uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *selfReportRepoMock) Create(ctx context.Context, rec *domain.SelfReportedCredit) (*domain.SelfReportedCredit, error) {
	if mock.CreateFunc == nil {
		panic("selfReportRepoMock.CreateFunc: method is nil but selfReportRepo.Create was just called")
	}
	callInfo := struct {
		Rec *domain.SelfReportedCredit
	}{Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *selfReportRepoMock) CreateCalls() []struct {
	Rec *domain.SelfReportedCredit
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *selfReportRepoMock) GetByID(ctx context.Context, userID, recID uuid.UUID) (*domain.SelfReportedCredit, error) {
	if mock.GetByIDFunc == nil {
		panic("selfReportRepoMock.GetByIDFunc: method is nil but selfReportRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		RecID  uuid.UUID
	}{UserID: userID, RecID: recID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, recID)
}

func (mock *selfReportRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	RecID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *selfReportRepoMock) Update(ctx context.Context, userID, recID uuid.UUID, params domain.SelfReportedUpdateParams) (*domain.SelfReportedCredit, error) {
	if mock.UpdateFunc == nil {
		panic("selfReportRepoMock.UpdateFunc: method is nil but selfReportRepo.Update was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		RecID  uuid.UUID
		Params domain.SelfReportedUpdateParams
	}{UserID: userID, RecID: recID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, recID, params)
}

func (mock *selfReportRepoMock) UpdateCalls() []struct {
	UserID uuid.UUID
	RecID  uuid.UUID
	Params domain.SelfReportedUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *selfReportRepoMock) Delete(ctx context.Context, userID, recID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("selfReportRepoMock.DeleteFunc: method is nil but selfReportRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		RecID  uuid.UUID
	}{UserID: userID, RecID: recID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, recID)
}

func (mock *selfReportRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	RecID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *selfReportRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.SelfReportedCredit, error) {
	if mock.ListFunc == nil {
		panic("selfReportRepoMock.ListFunc: method is nil but selfReportRepo.List was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *selfReportRepoMock) ListCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ reconciler = &reconcilerMock{}

type reconcilerMock struct {
	ReconcileAllFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		ReconcileAll []struct {
			UserID uuid.UUID
		}
	}
	lockReconcileAll sync.RWMutex
}

func (mock *reconcilerMock) ReconcileAll(ctx context.Context, userID uuid.UUID) error {
	if mock.ReconcileAllFunc == nil {
		panic("reconcilerMock.ReconcileAllFunc: method is nil but reconciler.ReconcileAll was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockReconcileAll.Lock()
	mock.calls.ReconcileAll = append(mock.calls.ReconcileAll, callInfo)
	mock.lockReconcileAll.Unlock()
	return mock.ReconcileAllFunc(ctx, userID)
}

func (mock *reconcilerMock) ReconcileAllCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockReconcileAll.RLock()
	calls := mock.calls.ReconcileAll
	mock.lockReconcileAll.RUnlock()
	return calls
}
