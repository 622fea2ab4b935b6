// Package dashboard assembles the landing-page view: recent certificates,
// requirement progress and current-year credit totals.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

const (
	recentCertificateLimit = 5
	upcomingDeadlineLimit  = 5
	requirementLimit       = 10
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

// CreditTypeTotal is the per-tag credit roll-up for the current year.
type CreditTypeTotal struct {
	CreditType string  `json:"credit_type"`
	Credits    float64 `json:"credits"`
	Count      int     `json:"count"`
}

// Dashboard is the aggregate landing-page payload.
type Dashboard struct {
	Year                 int                   `json:"year"`
	RecentCertificates   []*domain.Certificate `json:"recent_certificates"`
	Requirements         []*domain.Requirement `json:"requirements"`
	UpcomingDeadlines    []*domain.Requirement `json:"upcoming_deadlines"`
	CreditsByType        []CreditTypeTotal     `json:"credits_by_type"`
	TotalCreditsThisYear float64               `json:"total_credits_this_year"`
}

// Service builds the dashboard view.
type Service struct {
	certificates certificateReader
	requirements requirementReader
	log          *slog.Logger
	now          func() time.Time
}

// NewService creates a new Dashboard service.
func NewService(
	logger *slog.Logger,
	certificates certificateReader,
	requirements requirementReader,
) *Service {
	return &Service{
		certificates: certificates,
		requirements: requirements,
		log:          logger.With("service", "dashboard"),
		now:          time.Now,
	}
}

// Get assembles the dashboard for the authenticated user.
func (s *Service) Get(ctx context.Context) (*Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	certs, err := s.certificates.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}

	requirements, err := s.requirements.List(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}

	now := s.now()
	year := now.Year()

	recent := make([]*domain.Certificate, len(certs))
	copy(recent, certs)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentCertificateLimit {
		recent = recent[:recentCertificateLimit]
	}

	byType, totalCredits := currentYearTotals(certs, year)

	sort.SliceStable(requirements, func(i, j int) bool {
		return requirements[i].DueDate < requirements[j].DueDate
	})
	if len(requirements) > requirementLimit {
		requirements = requirements[:requirementLimit]
	}

	today := now.Format(domain.ISODateFormat)
	var upcoming []*domain.Requirement
	for _, r := range requirements {
		if r.DueDate >= today {
			upcoming = append(upcoming, r)
			if len(upcoming) == upcomingDeadlineLimit {
				break
			}
		}
	}

	return &Dashboard{
		Year:                 year,
		RecentCertificates:   recent,
		Requirements:         requirements,
		UpcomingDeadlines:    upcoming,
		CreditsByType:        byType,
		TotalCreditsThisYear: totalCredits,
	}, nil
}

// currentYearTotals rolls up this year's certificates per primary
// credit-type tag. Totals are sorted by credits descending for display.
func currentYearTotals(certs []*domain.Certificate, year int) ([]CreditTypeTotal, float64) {
	prefix := strconv.Itoa(year)
	buckets := make(map[string]*CreditTypeTotal)
	var total float64

	for _, c := range certs {
		if len(c.CompletionDate) < 4 || c.CompletionDate[:4] != prefix {
			continue
		}
		total += c.Credits

		tag := c.PrimaryCreditType()
		if tag == "" {
			tag = "unknown"
		}
		bucket, ok := buckets[tag]
		if !ok {
			bucket = &CreditTypeTotal{CreditType: tag}
			buckets[tag] = bucket
		}
		bucket.Credits += c.Credits
		bucket.Count++
	}

	out := make([]CreditTypeTotal, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Credits != out[j].Credits {
			return out[i].Credits > out[j].Credits
		}
		return out[i].CreditType < out[j].CreditType
	})

	return out, total
}
