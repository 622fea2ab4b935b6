// Package selfreport manages self-reported credits: non-certificate
// activities like teaching, peer review and self-study. Mutations
// re-reconcile the user's requirements.
package selfreport

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

// selfReportRepo defines the self-reported-credit persistence interface.
type selfReportRepo interface {
	Create(ctx context.Context, rec *domain.SelfReportedCredit) (*domain.SelfReportedCredit, error)
	GetByID(ctx context.Context, userID, recID uuid.UUID) (*domain.SelfReportedCredit, error)
	Update(ctx context.Context, userID, recID uuid.UUID, params domain.SelfReportedUpdateParams) (*domain.SelfReportedCredit, error)
	Delete(ctx context.Context, userID, recID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*domain.SelfReportedCredit, error)
}

// reconciler recomputes requirement progress after pool mutations.
type reconciler interface {
	ReconcileAll(ctx context.Context, userID uuid.UUID) error
}

// Service provides self-reported-credit management.
type Service struct {
	records    selfReportRepo
	reconciler reconciler
	log        *slog.Logger
}

// NewService creates a new SelfReport service.
func NewService(logger *slog.Logger, records selfReportRepo, rec reconciler) *Service {
	return &Service{
		records:    records,
		reconciler: rec,
		log:        logger.With("service", "selfreport"),
	}
}
