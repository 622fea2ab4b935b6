package requirement

import (
	"context"
	"fmt"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// ListRequirements returns the user's requirements ordered by due date.
// With activeOnly set, archived requirements are filtered out.
func (s *Service) ListRequirements(ctx context.Context, activeOnly bool) ([]*domain.Requirement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	reqs, err := s.requirements.List(ctx, userID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	return reqs, nil
}
