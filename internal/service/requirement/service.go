// Package requirement manages credits-by-deadline targets and owns the
// reconciliation of their derived progress totals against the certificate
// and self-reported-credit pools.
package requirement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

// requirementRepo defines the requirement persistence interface.
type requirementRepo interface {
	Create(ctx context.Context, req *domain.Requirement) (*domain.Requirement, error)
	GetByID(ctx context.Context, userID, reqID uuid.UUID) (*domain.Requirement, error)
	Update(ctx context.Context, userID, reqID uuid.UUID, params domain.RequirementUpdateParams) (*domain.Requirement, error)
	Delete(ctx context.Context, userID, reqID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*domain.Requirement, error)
	// SaveProgress overwrites the derived fields; nothing else writes them.
	SaveProgress(ctx context.Context, reqID uuid.UUID, progress domain.Progress) error
}

// certificateReader provides read access to the certificate pool.
type certificateReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error)
}

// selfReportReader provides read access to the self-reported-credit pool.
type selfReportReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SelfReportedCredit, error)
}

// Service provides requirement management and reconciliation.
type Service struct {
	requirements requirementRepo
	certificates certificateReader
	selfReports  selfReportReader
	log          *slog.Logger
}

// NewService creates a new Requirement service.
func NewService(
	logger *slog.Logger,
	requirements requirementRepo,
	certificates certificateReader,
	selfReports selfReportReader,
) *Service {
	return &Service{
		requirements: requirements,
		certificates: certificates,
		selfReports:  selfReports,
		log:          logger.With("service", "requirement"),
	}
}
