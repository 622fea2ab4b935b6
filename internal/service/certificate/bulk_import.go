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

// BulkImportResult reports the outcome of a bulk import. Row failures do
// not abort the batch.
type BulkImportResult struct {
	Imported int
	Errors   []BulkRowError
}

// BulkRowError describes why one row was skipped.
type BulkRowError struct {
	Row     int
	Message string
}

// BulkImport creates certificates from a batch of rows, collecting per-row
// errors instead of failing the whole batch. Requirements are re-reconciled
// once at the end when anything was imported.
func (s *Service) BulkImport(ctx context.Context, input BulkImportInput) (*BulkImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	result := &BulkImportResult{}
	for idx, row := range input.Rows {
		if msg, ok := validateRow(row); !ok {
			result.Errors = append(result.Errors, BulkRowError{Row: idx, Message: msg})
			continue
		}

		creditTypes := normalizeTags(row.CreditTypes)
		if len(creditTypes) == 0 {
			creditTypes = []string{domain.DefaultCreditType}
		}

		_, err := s.certificates.Create(ctx, &domain.Certificate{
			ID:               uuid.New(),
			UserID:           userID,
			Title:            strings.TrimSpace(row.Title),
			Provider:         strings.TrimSpace(row.Provider),
			Credits:          row.Credits,
			CreditTypes:      creditTypes,
			Subject:          row.Subject,
			CompletionDate:   row.CompletionDate,
			ExtractionStatus: domain.ExtractionStatusNone,
		})
		if err != nil {
			result.Errors = append(result.Errors, BulkRowError{Row: idx, Message: err.Error()})
			continue
		}
		result.Imported++
	}

	if result.Imported > 0 {
		if err := s.reconciler.ReconcileAll(ctx, userID); err != nil {
			return nil, fmt.Errorf("reconcile requirements: %w", err)
		}
	}

	s.log.InfoContext(ctx, "bulk import finished",
		slog.String("user_id", userID.String()),
		slog.Int("imported", result.Imported),
		slog.Int("failed", len(result.Errors)),
	)

	return result, nil
}

func validateRow(row BulkImportRow) (string, bool) {
	if strings.TrimSpace(row.Title) == "" {
		return "title required", false
	}
	if row.Credits < 0 {
		return "credits must not be negative", false
	}
	if !domain.IsISODate(row.CompletionDate) {
		return "completion_date must be YYYY-MM-DD", false
	}
	return "", true
}
