package certificate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// GetCertificate returns a single certificate owned by the authenticated user.
func (s *Service) GetCertificate(ctx context.Context, certID uuid.UUID) (*domain.Certificate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if certID == uuid.Nil {
		return nil, domain.NewValidationError("certificate_id", "required")
	}

	cert, err := s.certificates.GetByID(ctx, userID, certID)
	if err != nil {
		return nil, fmt.Errorf("get certificate: %w", err)
	}
	return cert, nil
}
