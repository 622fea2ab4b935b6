package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// Profile is the user account together with aggregate record statistics.
type Profile struct {
	User *domain.User

	TotalCertificates  int
	TotalSelfReported  int
	TotalCredits       float64
	ActiveRequirements int
}

// GetProfile returns the authenticated user's profile with statistics over
// both credit pools.
func (s *Service) GetProfile(ctx context.Context) (*Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	certCount, certCredits, err := s.stats.CertificateStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("certificate stats: %w", err)
	}
	selfCount, selfCredits, err := s.stats.SelfReportedStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("self-reported stats: %w", err)
	}
	activeReqs, err := s.stats.ActiveRequirementCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("active requirement count: %w", err)
	}

	return &Profile{
		User:               u,
		TotalCertificates:  certCount,
		TotalSelfReported:  selfCount,
		TotalCredits:       certCredits + selfCredits,
		ActiveRequirements: activeReqs,
	}, nil
}

// UpdateProfession sets the user's profession, which selects the credit-type
// catalog shown to them.
func (s *Service) UpdateProfession(ctx context.Context, profession domain.Profession) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if !profession.IsValid() {
		return nil, domain.NewValidationError("profession", "invalid value")
	}

	u, err := s.users.UpdateProfession(ctx, userID, profession)
	if err != nil {
		return nil, fmt.Errorf("update profession: %w", err)
	}

	s.log.InfoContext(ctx, "profession updated",
		slog.String("user_id", userID.String()),
		slog.String("profession", string(profession)),
	)

	return u, nil
}
