package certificate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// DeleteCertificate removes a certificate and re-reconciles the user's
// requirements, since its credits no longer count toward anything.
func (s *Service) DeleteCertificate(ctx context.Context, certID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if certID == uuid.Nil {
		return domain.NewValidationError("certificate_id", "required")
	}

	if err := s.certificates.Delete(ctx, userID, certID); err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}

	if err := s.reconciler.ReconcileAll(ctx, userID); err != nil {
		return fmt.Errorf("reconcile requirements: %w", err)
	}

	s.log.InfoContext(ctx, "certificate deleted",
		slog.String("user_id", userID.String()),
		slog.String("certificate_id", certID.String()),
	)

	return nil
}
