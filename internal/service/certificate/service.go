// Package certificate manages the certificate pool: manual CRUD, document
// upload with vision extraction, registry import and bulk import. Every
// mutation re-reconciles the user's requirements before returning.
package certificate

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/internal/service/extraction"
)

// certificateRepo defines the certificate persistence interface.
type certificateRepo interface {
	Create(ctx context.Context, cert *domain.Certificate) (*domain.Certificate, error)
	GetByID(ctx context.Context, userID, certID uuid.UUID) (*domain.Certificate, error)
	Update(ctx context.Context, userID, certID uuid.UUID, params domain.CertificateUpdateParams) (*domain.Certificate, error)
	Delete(ctx context.Context, userID, certID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.CertificateFilter) ([]*domain.Certificate, error)
}

// visionExtractor reads a certificate document and returns the raw model
// response text.
type visionExtractor interface {
	ExtractCertificate(ctx context.Context, image []byte, mediaType string) (string, error)
}

// documentStore persists uploaded certificate documents and returns a
// reference usable for later retrieval.
type documentStore interface {
	Save(ctx context.Context, userID uuid.UUID, filename string, data []byte) (string, error)
}

// reconciler recomputes requirement progress after pool mutations.
type reconciler interface {
	ReconcileAll(ctx context.Context, userID uuid.UUID) error
}

// txRunner executes a function within a database transaction so multi-row
// imports either land fully or not at all.
type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides certificate management.
type Service struct {
	certificates certificateRepo
	vision       visionExtractor
	normalizer   *extraction.Normalizer
	documents    documentStore
	reconciler   reconciler
	tx           txRunner
	log          *slog.Logger
}

// NewService creates a new Certificate service.
func NewService(
	logger *slog.Logger,
	certificates certificateRepo,
	vision visionExtractor,
	normalizer *extraction.Normalizer,
	documents documentStore,
	rec reconciler,
	tx txRunner,
) *Service {
	return &Service{
		certificates: certificates,
		vision:       vision,
		normalizer:   normalizer,
		documents:    documents,
		reconciler:   rec,
		tx:           tx,
		log:          logger.With("service", "certificate"),
	}
}
