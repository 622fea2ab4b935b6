package requirement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// CreateRequirement creates a new requirement for the authenticated user
// and immediately reconciles its progress against the existing pools.
func (s *Service) CreateRequirement(ctx context.Context, input CreateRequirementInput) (*domain.Requirement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.requirements.Create(ctx, &domain.Requirement{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            strings.TrimSpace(input.Name),
		Kind:            strings.TrimSpace(input.Kind),
		CreditTypes:     trimAll(input.CreditTypes),
		Providers:       trimAll(input.Providers),
		Subjects:        trimAll(input.Subjects),
		CreditsRequired: input.CreditsRequired,
		StartYear:       input.StartYear,
		EndYear:         input.EndYear,
		DueDate:         input.DueDate,
		Notes:           input.Notes,
		IsActive:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("create requirement: %w", err)
	}

	req, err = s.ReconcileOne(ctx, userID, req.ID)
	if err != nil {
		return nil, fmt.Errorf("reconcile requirement: %w", err)
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}

	s.log.InfoContext(ctx, "requirement created",
		slog.String("user_id", userID.String()),
		slog.String("requirement_id", req.ID.String()),
		slog.String("name", req.Name),
	)

	return req, nil
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
