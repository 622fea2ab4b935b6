// Package user implements profile, profession and NPI operations.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/adapter/provider/npi"
	"github.com/credtrack/credtrack-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfession(ctx context.Context, id uuid.UUID, profession domain.Profession) (*domain.User, error)
	SetNPI(ctx context.Context, id uuid.UUID, number string, verified bool, data map[string]any) (*domain.User, error)
	ClearNPI(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// poolStats aggregates per-user record statistics for the profile view.
type poolStats interface {
	CertificateStats(ctx context.Context, userID uuid.UUID) (count int, credits float64, err error)
	SelfReportedStats(ctx context.Context, userID uuid.UUID) (count int, credits float64, err error)
	ActiveRequirementCount(ctx context.Context, userID uuid.UUID) (int, error)
}

// npiRegistry looks up NPI records in the NPPES registry.
type npiRegistry interface {
	Lookup(ctx context.Context, number string) (*npi.Record, error)
}

// Service implements user profile operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	stats    poolStats
	registry npiRegistry
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	stats poolStats,
	registry npiRegistry,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		stats:    stats,
		registry: registry,
	}
}
