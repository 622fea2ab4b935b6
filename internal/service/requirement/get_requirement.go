package requirement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// GetRequirement returns a single requirement owned by the authenticated user.
func (s *Service) GetRequirement(ctx context.Context, reqID uuid.UUID) (*domain.Requirement, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if reqID == uuid.Nil {
		return nil, domain.NewValidationError("requirement_id", "required")
	}

	req, err := s.requirements.GetByID(ctx, userID, reqID)
	if err != nil {
		return nil, fmt.Errorf("get requirement: %w", err)
	}
	return req, nil
}
