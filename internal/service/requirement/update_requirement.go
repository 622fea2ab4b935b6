package requirement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// UpdateRequirement applies the provided changes and recomputes the
// requirement's progress, since any filter change can alter what matches.
func (s *Service) UpdateRequirement(ctx context.Context, input UpdateRequirementInput) (*domain.Requirement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.RequirementUpdateParams{
		Name:            input.Name,
		Kind:            input.Kind,
		CreditTypes:     trimAll(input.CreditTypes),
		Providers:       trimAll(input.Providers),
		Subjects:        trimAll(input.Subjects),
		CreditsRequired: input.CreditsRequired,
		StartYear:       input.StartYear,
		EndYear:         input.EndYear,
		DueDate:         input.DueDate,
		Notes:           input.Notes,
		IsActive:        input.IsActive,
	}

	if _, err := s.requirements.Update(ctx, userID, input.RequirementID, params); err != nil {
		return nil, fmt.Errorf("update requirement: %w", err)
	}

	req, err := s.ReconcileOne(ctx, userID, input.RequirementID)
	if err != nil {
		return nil, fmt.Errorf("reconcile requirement: %w", err)
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}

	s.log.InfoContext(ctx, "requirement updated",
		slog.String("user_id", userID.String()),
		slog.String("requirement_id", input.RequirementID.String()),
	)

	return req, nil
}
