// Package report builds yearly transcript summaries and exports over the
// certificate pool.
package report

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/config"
	"github.com/credtrack/credtrack-backend/internal/domain"
)

// certificateReader provides read access to the certificate pool.
type certificateReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error)
}

// requirementReader provides read access to requirements with their derived
// progress fields.
type requirementReader interface {
	List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*domain.Requirement, error)
}

// userReader resolves account details for transcript headers.
type userReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service builds reports and transcript exports.
type Service struct {
	cfg          config.ReportsConfig
	certificates certificateReader
	requirements requirementReader
	users        userReader
	log          *slog.Logger
}

// NewService creates a new Report service.
func NewService(
	cfg config.ReportsConfig,
	logger *slog.Logger,
	certificates certificateReader,
	requirements requirementReader,
	users userReader,
) *Service {
	return &Service{
		cfg:          cfg,
		certificates: certificates,
		requirements: requirements,
		users:        users,
		log:          logger.With("service", "report"),
	}
}

// completionYear extracts the calendar year from an ISO date string. The
// second return value is false when the date does not start with four digits.
func completionYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// certificatesForYear filters the pool down to one completion year.
func certificatesForYear(certs []*domain.Certificate, year int) []*domain.Certificate {
	var out []*domain.Certificate
	for _, c := range certs {
		if y, ok := completionYear(c.CompletionDate); ok && y == year {
			out = append(out, c)
		}
	}
	return out
}
