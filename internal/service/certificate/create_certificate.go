package certificate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// CreateCertificate creates a certificate from manually entered fields and
// re-reconciles the user's requirements.
func (s *Service) CreateCertificate(ctx context.Context, input CreateCertificateInput) (*domain.Certificate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	creditTypes := normalizeTags(input.CreditTypes)
	if len(creditTypes) == 0 {
		creditTypes = []string{domain.DefaultCreditType}
	}

	cert, err := s.certificates.Create(ctx, &domain.Certificate{
		ID:                uuid.New(),
		UserID:            userID,
		Title:             strings.TrimSpace(input.Title),
		Provider:          strings.TrimSpace(input.Provider),
		Credits:           input.Credits,
		CreditTypes:       creditTypes,
		Subject:           input.Subject,
		CompletionDate:    input.CompletionDate,
		ExpirationDate:    input.ExpirationDate,
		CertificateNumber: input.CertificateNumber,
		ExtractionStatus:  domain.ExtractionStatusNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}

	if err := s.reconciler.ReconcileAll(ctx, userID); err != nil {
		return nil, fmt.Errorf("reconcile requirements: %w", err)
	}

	s.log.InfoContext(ctx, "certificate created",
		slog.String("user_id", userID.String()),
		slog.String("certificate_id", cert.ID.String()),
		slog.String("title", cert.Title),
	)

	return cert, nil
}

// normalizeTags trims entries and drops duplicates while preserving the
// first-seen order.
func normalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
