package certificate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// UpdateCertificate applies the provided field changes and re-reconciles
// the user's requirements.
func (s *Service) UpdateCertificate(ctx context.Context, input UpdateCertificateInput) (*domain.Certificate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CertificateUpdateParams{
		Title:             input.Title,
		Provider:          input.Provider,
		Credits:           input.Credits,
		Subject:           input.Subject,
		CompletionDate:    input.CompletionDate,
		ExpirationDate:    input.ExpirationDate,
		CertificateNumber: input.CertificateNumber,
	}
	if input.CreditTypes != nil {
		params.CreditTypes = normalizeTags(input.CreditTypes)
	}

	cert, err := s.certificates.Update(ctx, userID, input.CertificateID, params)
	if err != nil {
		return nil, fmt.Errorf("update certificate: %w", err)
	}

	if err := s.reconciler.ReconcileAll(ctx, userID); err != nil {
		return nil, fmt.Errorf("reconcile requirements: %w", err)
	}

	s.log.InfoContext(ctx, "certificate updated",
		slog.String("user_id", userID.String()),
		slog.String("certificate_id", cert.ID.String()),
	)

	return cert, nil
}
