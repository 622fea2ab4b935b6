package certificate

import (
	"context"
	"fmt"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// ListCertificates returns the user's certificates, newest completion first,
// optionally narrowed by credit type and completion year.
func (s *Service) ListCertificates(ctx context.Context, filter domain.CertificateFilter) ([]*domain.Certificate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	certs, err := s.certificates.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	return certs, nil
}
