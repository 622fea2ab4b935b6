package credittype

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

var _ customTypeRepo = &customTypeRepoMock{}

type customTypeRepoMock struct {
	CreateFunc       func(ctx context.Context, ct *domain.CustomCreditType) (*domain.CustomCreditType, error)
	DeleteFunc       func(ctx context.Context, userID, typeID uuid.UUID) error
	ListFunc         func(ctx context.Context, userID uuid.UUID) ([]*domain.CustomCreditType, error)
	ExistsByNameFunc func(ctx context.Context, userID uuid.UUID, name string) (bool, error)

	calls struct {
		Create []struct {
			CT *domain.CustomCreditType
		}
		Delete []struct {
			UserID uuid.UUID
			TypeID uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
		}
		ExistsByName []struct {
			UserID uuid.UUID
			Name   string
		}
	}
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockList         sync.RWMutex
	lockExistsByName sync.RWMutex
}

func (mock *customTypeRepoMock) Create(ctx context.Context, ct *domain.CustomCreditType) (*domain.CustomCreditType, error) {
	if mock.CreateFunc == nil {
		panic("customTypeRepoMock.CreateFunc: method is nil but customTypeRepo.Create was just called")
	}
	callInfo := struct {
		CT *domain.CustomCreditType
	}{CT: ct}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ct)
}

func (mock *customTypeRepoMock) CreateCalls() []struct {
	CT *domain.CustomCreditType
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *customTypeRepoMock) Delete(ctx context.Context, userID, typeID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("customTypeRepoMock.DeleteFunc: method is nil but customTypeRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		TypeID uuid.UUID
	}{UserID: userID, TypeID: typeID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, typeID)
}

func (mock *customTypeRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	TypeID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *customTypeRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.CustomCreditType, error) {
	if mock.ListFunc == nil {
		panic("customTypeRepoMock.ListFunc: method is nil but customTypeRepo.List was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *customTypeRepoMock) ListCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *customTypeRepoMock) ExistsByName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	if mock.ExistsByNameFunc == nil {
		panic("customTypeRepoMock.ExistsByNameFunc: method is nil but customTypeRepo.ExistsByName was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Name   string
	}{UserID: userID, Name: name}
	mock.lockExistsByName.Lock()
	mock.calls.ExistsByName = append(mock.calls.ExistsByName, callInfo)
	mock.lockExistsByName.Unlock()
	return mock.ExistsByNameFunc(ctx, userID, name)
}

func (mock *customTypeRepoMock) ExistsByNameCalls() []struct {
	UserID uuid.UUID
	Name   string
} {
	mock.lockExistsByName.RLock()
	calls := mock.calls.ExistsByName
	mock.lockExistsByName.RUnlock()
	return calls
}

var _ userReader = &userReaderMock{}

type userReaderMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			UserID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userReaderMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userReaderMock.GetByIDFunc: method is nil but userReader.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID)
}

func (mock *userReaderMock) GetByIDCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
