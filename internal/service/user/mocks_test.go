package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/adapter/provider/npi"
	"github.com/credtrack/credtrack-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfessionFunc func(ctx context.Context, id uuid.UUID, profession domain.Profession) (*domain.User, error)
	SetNPIFunc           func(ctx context.Context, id uuid.UUID, number string, verified bool, data map[string]any) (*domain.User, error)
	ClearNPIFunc         func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		UpdateProfession []struct {
			ID         uuid.UUID
			Profession domain.Profession
		}
		SetNPI []struct {
			ID       uuid.UUID
			Number   string
			Verified bool
			Data     map[string]any
		}
		ClearNPI []struct {
			ID uuid.UUID
		}
	}
	lockGetByID          sync.RWMutex
	lockUpdateProfession sync.RWMutex
	lockSetNPI           sync.RWMutex
	lockClearNPI         sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfession(ctx context.Context, id uuid.UUID, profession domain.Profession) (*domain.User, error) {
	if mock.UpdateProfessionFunc == nil {
		panic("userRepoMock.UpdateProfessionFunc: method is nil but userRepo.UpdateProfession was just called")
	}
	callInfo := struct {
		ID         uuid.UUID
		Profession domain.Profession
	}{ID: id, Profession: profession}
	mock.lockUpdateProfession.Lock()
	mock.calls.UpdateProfession = append(mock.calls.UpdateProfession, callInfo)
	mock.lockUpdateProfession.Unlock()
	return mock.UpdateProfessionFunc(ctx, id, profession)
}

func (mock *userRepoMock) UpdateProfessionCalls() []struct {
	ID         uuid.UUID
	Profession domain.Profession
} {
	mock.lockUpdateProfession.RLock()
	calls := mock.calls.UpdateProfession
	mock.lockUpdateProfession.RUnlock()
	return calls
}

func (mock *userRepoMock) SetNPI(ctx context.Context, id uuid.UUID, number string, verified bool, data map[string]any) (*domain.User, error) {
	if mock.SetNPIFunc == nil {
		panic("userRepoMock.SetNPIFunc: method is nil but userRepo.SetNPI was just called")
	}
	callInfo := struct {
		ID       uuid.UUID
		Number   string
		Verified bool
		Data     map[string]any
	}{ID: id, Number: number, Verified: verified, Data: data}
	mock.lockSetNPI.Lock()
	mock.calls.SetNPI = append(mock.calls.SetNPI, callInfo)
	mock.lockSetNPI.Unlock()
	return mock.SetNPIFunc(ctx, id, number, verified, data)
}

func (mock *userRepoMock) SetNPICalls() []struct {
	ID       uuid.UUID
	Number   string
	Verified bool
	Data     map[string]any
} {
	mock.lockSetNPI.RLock()
	calls := mock.calls.SetNPI
	mock.lockSetNPI.RUnlock()
	return calls
}

func (mock *userRepoMock) ClearNPI(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.ClearNPIFunc == nil {
		panic("userRepoMock.ClearNPIFunc: method is nil but userRepo.ClearNPI was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockClearNPI.Lock()
	mock.calls.ClearNPI = append(mock.calls.ClearNPI, callInfo)
	mock.lockClearNPI.Unlock()
	return mock.ClearNPIFunc(ctx, id)
}

func (mock *userRepoMock) ClearNPICalls() []struct {
	ID uuid.UUID
} {
	mock.lockClearNPI.RLock()
	calls := mock.calls.ClearNPI
	mock.lockClearNPI.RUnlock()
	return calls
}

var _ poolStats = &poolStatsMock{}

type poolStatsMock struct {
	CertificateStatsFunc       func(ctx context.Context, userID uuid.UUID) (int, float64, error)
	SelfReportedStatsFunc      func(ctx context.Context, userID uuid.UUID) (int, float64, error)
	ActiveRequirementCountFunc func(ctx context.Context, userID uuid.UUID) (int, error)
}

func (mock *poolStatsMock) CertificateStats(ctx context.Context, userID uuid.UUID) (int, float64, error) {
	if mock.CertificateStatsFunc == nil {
		panic("poolStatsMock.CertificateStatsFunc: method is nil but poolStats.CertificateStats was just called")
	}
	return mock.CertificateStatsFunc(ctx, userID)
}

func (mock *poolStatsMock) SelfReportedStats(ctx context.Context, userID uuid.UUID) (int, float64, error) {
	if mock.SelfReportedStatsFunc == nil {
		panic("poolStatsMock.SelfReportedStatsFunc: method is nil but poolStats.SelfReportedStats was just called")
	}
	return mock.SelfReportedStatsFunc(ctx, userID)
}

func (mock *poolStatsMock) ActiveRequirementCount(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.ActiveRequirementCountFunc == nil {
		panic("poolStatsMock.ActiveRequirementCountFunc: method is nil but poolStats.ActiveRequirementCount was just called")
	}
	return mock.ActiveRequirementCountFunc(ctx, userID)
}

var _ npiRegistry = &npiRegistryMock{}

type npiRegistryMock struct {
	LookupFunc func(ctx context.Context, number string) (*npi.Record, error)

	calls struct {
		Lookup []struct {
			Number string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *npiRegistryMock) Lookup(ctx context.Context, number string) (*npi.Record, error) {
	if mock.LookupFunc == nil {
		panic("npiRegistryMock.LookupFunc: method is nil but npiRegistry.Lookup was just called")
	}
	callInfo := struct {
		Number string
	}{Number: number}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, number)
}

func (mock *npiRegistryMock) LookupCalls() []struct {
	Number string
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
