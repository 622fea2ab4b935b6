package certificate

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

var _ certificateRepo = &certificateRepoMock{}

type certificateRepoMock struct {
	CreateFunc  func(ctx context.Context, cert *domain.Certificate) (*domain.Certificate, error)
	GetByIDFunc func(ctx context.Context, userID, certID uuid.UUID) (*domain.Certificate, error)
	UpdateFunc  func(ctx context.Context, userID, certID uuid.UUID, params domain.CertificateUpdateParams) (*domain.Certificate, error)
	DeleteFunc  func(ctx context.Context, userID, certID uuid.UUID) error
	ListFunc    func(ctx context.Context, userID uuid.UUID, filter domain.CertificateFilter) ([]*domain.Certificate, error)

	calls struct {
		Create []struct {
			Cert *domain.Certificate
		}
		GetByID []struct {
			UserID uuid.UUID
			CertID uuid.UUID
		}
		Update []struct {
			UserID uuid.UUID
			CertID uuid.UUID
			Params domain.CertificateUpdateParams
		}
		Delete []struct {
			UserID uuid.UUID
			CertID uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
			Filter domain.CertificateFilter
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *certificateRepoMock) Create(ctx context.Context, cert *domain.Certificate) (*domain.Certificate, error) {
	if mock.CreateFunc == nil {
		panic("certificateRepoMock.CreateFunc: method is nil but certificateRepo.Create was just called")
	}
	callInfo := struct {
		Cert *domain.Certificate
	}{Cert: cert}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, cert)
}

func (mock *certificateRepoMock) CreateCalls() []struct {
	Cert *domain.Certificate
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *certificateRepoMock) GetByID(ctx context.Context, userID, certID uuid.UUID) (*domain.Certificate, error) {
	if mock.GetByIDFunc == nil {
		panic("certificateRepoMock.GetByIDFunc: method is nil but certificateRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		CertID uuid.UUID
	}{UserID: userID, CertID: certID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, certID)
}

func (mock *certificateRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	CertID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *certificateRepoMock) Update(ctx context.Context, userID, certID uuid.UUID, params domain.CertificateUpdateParams) (*domain.Certificate, error) {
	if mock.UpdateFunc == nil {
		panic("certificateRepoMock.UpdateFunc: method is nil but certificateRepo.Update was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		CertID uuid.UUID
		Params domain.CertificateUpdateParams
	}{UserID: userID, CertID: certID, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, certID, params)
}

func (mock *certificateRepoMock) UpdateCalls() []struct {
	UserID uuid.UUID
	CertID uuid.UUID
	Params domain.CertificateUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *certificateRepoMock) Delete(ctx context.Context, userID, certID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("certificateRepoMock.DeleteFunc: method is nil but certificateRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		CertID uuid.UUID
	}{UserID: userID, CertID: certID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, certID)
}

func (mock *certificateRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	CertID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *certificateRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.CertificateFilter) ([]*domain.Certificate, error) {
	if mock.ListFunc == nil {
		panic("certificateRepoMock.ListFunc: method is nil but certificateRepo.List was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Filter domain.CertificateFilter
	}{UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *certificateRepoMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter domain.CertificateFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ visionExtractor = &visionExtractorMock{}

type visionExtractorMock struct {
	ExtractCertificateFunc func(ctx context.Context, image []byte, mediaType string) (string, error)

	calls struct {
		ExtractCertificate []struct {
			Image     []byte
			MediaType string
		}
	}
	lockExtractCertificate sync.RWMutex
}

func (mock *visionExtractorMock) ExtractCertificate(ctx context.Context, image []byte, mediaType string) (string, error) {
	if mock.ExtractCertificateFunc == nil {
		panic("visionExtractorMock.ExtractCertificateFunc: method is nil but visionExtractor.ExtractCertificate was just called")
	}
	callInfo := struct {
		Image     []byte
		MediaType string
	}{Image: image, MediaType: mediaType}
	mock.lockExtractCertificate.Lock()
	mock.calls.ExtractCertificate = append(mock.calls.ExtractCertificate, callInfo)
	mock.lockExtractCertificate.Unlock()
	return mock.ExtractCertificateFunc(ctx, image, mediaType)
}

func (mock *visionExtractorMock) ExtractCertificateCalls() []struct {
	Image     []byte
	MediaType string
} {
	mock.lockExtractCertificate.RLock()
	calls := mock.calls.ExtractCertificate
	mock.lockExtractCertificate.RUnlock()
	return calls
}

var _ documentStore = &documentStoreMock{}

type documentStoreMock struct {
	SaveFunc func(ctx context.Context, userID uuid.UUID, filename string, data []byte) (string, error)

	calls struct {
		Save []struct {
			UserID   uuid.UUID
			Filename string
			Data     []byte
		}
	}
	lockSave sync.RWMutex
}

func (mock *documentStoreMock) Save(ctx context.Context, userID uuid.UUID, filename string, data []byte) (string, error) {
	if mock.SaveFunc == nil {
		panic("documentStoreMock.SaveFunc: method is nil but documentStore.Save was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		Filename string
		Data     []byte
	}{UserID: userID, Filename: filename, Data: data}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, userID, filename, data)
}

func (mock *documentStoreMock) SaveCalls() []struct {
	UserID   uuid.UUID
	Filename string
	Data     []byte
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
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

// Ensure, that txRunnerMock does implement txRunner.
var _ txRunner = &txRunnerMock{}

// txRunnerMock is a mock implementation of txRunner.
type txRunnerMock struct {
	// RunInTxFunc mocks the RunInTx method.
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txRunnerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txRunnerMock.RunInTxFunc: method is nil but txRunner.RunInTx was just called")
	}
	callInfo := struct {
	}{}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txRunnerMock) RunInTxCalls() []struct {
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
