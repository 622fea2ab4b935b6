package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

var _ certificateReader = &certificateReaderMock{}

type certificateReaderMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error)

	calls struct {
		ListByUser []struct {
			UserID uuid.UUID
		}
	}
	lockListByUser sync.RWMutex
}

func (mock *certificateReaderMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error) {
	if mock.ListByUserFunc == nil {
		panic("certificateReaderMock.ListByUserFunc: method is nil but certificateReader.ListByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *certificateReaderMock) ListByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

var _ requirementReader = &requirementReaderMock{}

type requirementReaderMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*domain.Requirement, error)

	calls struct {
		List []struct {
			UserID     uuid.UUID
			ActiveOnly bool
		}
	}
	lockList sync.RWMutex
}

func (mock *requirementReaderMock) List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*domain.Requirement, error) {
	if mock.ListFunc == nil {
		panic("requirementReaderMock.ListFunc: method is nil but requirementReader.List was just called")
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

func (mock *requirementReaderMock) ListCalls() []struct {
	UserID     uuid.UUID
	ActiveOnly bool
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
