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

// RegistryImport creates certificates from an external credentialing
// registry payload. Imported records are flagged so they can be told apart
// from hand-entered ones, and requirements are re-reconciled once at the
// end rather than per record.
func (s *Service) RegistryImport(ctx context.Context, input RegistryImportInput) ([]*domain.Certificate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// A failed record rolls back the whole batch.
	imported := make([]*domain.Certificate, 0, len(input.Records))
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for idx, record := range input.Records {
			title := strings.TrimSpace(record.Title)
			if title == "" {
				return domain.NewValidationError(
					fmt.Sprintf("records[%d].title", idx), "required")
			}
			if !domain.IsISODate(record.CompletionDate) {
				return domain.NewValidationError(
					fmt.Sprintf("records[%d].completion_date", idx), "must be YYYY-MM-DD")
			}

			creditType := strings.TrimSpace(record.CreditType)
			if creditType == "" {
				creditType = domain.DefaultCreditType
			}

			cert, err := s.certificates.Create(ctx, &domain.Certificate{
				ID:               uuid.New(),
				UserID:           userID,
				Title:            title,
				Provider:         strings.TrimSpace(record.Provider),
				Credits:          record.Credits,
				CreditTypes:      []string{creditType},
				CompletionDate:   record.CompletionDate,
				ExtractionStatus: domain.ExtractionStatusNone,
				RegistryImported: true,
			})
			if err != nil {
				return fmt.Errorf("import registry record %d: %w", idx, err)
			}
			imported = append(imported, cert)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.reconciler.ReconcileAll(ctx, userID); err != nil {
		return nil, fmt.Errorf("reconcile requirements: %w", err)
	}

	s.log.InfoContext(ctx, "registry import finished",
		slog.String("user_id", userID.String()),
		slog.Int("imported", len(imported)),
	)

	return imported, nil
}
