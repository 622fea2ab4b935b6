package requirement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

// ReconcileOne recomputes the derived progress of a single requirement
// from a full scan of the user's certificate and self-reported pools, then
// persists it. A requirement deleted since the trigger fired is a no-op
// and returns (nil, nil).
func (s *Service) ReconcileOne(ctx context.Context, userID, reqID uuid.UUID) (*domain.Requirement, error) {
	req, err := s.requirements.GetByID(ctx, userID, reqID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get requirement: %w", err)
	}

	certs, selfReports, err := s.loadPools(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := ComputeProgress(req, certs, selfReports)
	if err := s.requirements.SaveProgress(ctx, req.ID, progress); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	req.CreditsEarned = progress.CreditsEarned
	req.MatchingCertificates = progress.MatchingCertificates
	req.MatchingSelfReported = progress.MatchingSelfReported

	s.log.DebugContext(ctx, "requirement reconciled",
		slog.String("requirement_id", req.ID.String()),
		slog.Float64("credits_earned", progress.CreditsEarned),
	)

	return req, nil
}

// ReconcileAll recomputes every active requirement of the user. Pool
// mutations call this; the pools are loaded once and shared across all
// requirements. Archived requirements catch up on re-activation, which
// goes through UpdateRequirement and its ReconcileOne.
func (s *Service) ReconcileAll(ctx context.Context, userID uuid.UUID) error {
	reqs, err := s.requirements.List(ctx, userID, true)
	if err != nil {
		return fmt.Errorf("list requirements: %w", err)
	}
	if len(reqs) == 0 {
		return nil
	}

	certs, selfReports, err := s.loadPools(ctx, userID)
	if err != nil {
		return err
	}

	for _, req := range reqs {
		progress := ComputeProgress(req, certs, selfReports)
		if err := s.requirements.SaveProgress(ctx, req.ID, progress); err != nil {
			return fmt.Errorf("save progress for %s: %w", req.ID, err)
		}
	}

	s.log.DebugContext(ctx, "requirements reconciled",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(reqs)),
	)

	return nil
}

func (s *Service) loadPools(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, []*domain.SelfReportedCredit, error) {
	certs, err := s.certificates.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list certificates: %w", err)
	}
	selfReports, err := s.selfReports.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list self-reported credits: %w", err)
	}
	return certs, selfReports, nil
}
