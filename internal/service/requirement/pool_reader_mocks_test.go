package requirement

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

var _ selfReportReader = &selfReportReaderMock{}

type selfReportReaderMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.SelfReportedCredit, error)

	calls struct {
		ListByUser []struct {
			UserID uuid.UUID
		}
	}
	lockListByUser sync.RWMutex
}

func (mock *selfReportReaderMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SelfReportedCredit, error) {
	if mock.ListByUserFunc == nil {
		panic("selfReportReaderMock.ListByUserFunc: method is nil but selfReportReader.ListByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *selfReportReaderMock) ListByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
