package requirement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// DeleteRequirement removes the requirement. Derived progress disappears
// with it; nothing else references the row.
func (s *Service) DeleteRequirement(ctx context.Context, input DeleteRequirementInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.requirements.Delete(ctx, userID, input.RequirementID); err != nil {
		return fmt.Errorf("delete requirement: %w", err)
	}

	s.log.InfoContext(ctx, "requirement deleted",
		slog.String("user_id", userID.String()),
		slog.String("requirement_id", input.RequirementID.String()),
	)

	return nil
}
