package certificate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/internal/service/extraction"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// placeholderTitle is shown until extraction fills in the real title.
const placeholderTitle = "Processing certificate..."

// UploadCertificate stores the document, runs the time-bounded vision
// extraction, normalizes its output and returns the finished certificate.
// Every outcome leaves the record in a terminal extraction status; an
// upstream failure becomes a failed record with an advisory, never an
// error for the caller.
func (s *Service) UploadCertificate(ctx context.Context, input UploadCertificateInput) (*domain.Certificate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	docRef, err := s.documents.Save(ctx, userID, input.Filename, input.Data)
	if err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	cert, err := s.certificates.Create(ctx, &domain.Certificate{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            placeholderTitle,
		CreditTypes:      []string{domain.DefaultCreditType},
		CompletionDate:   time.Now().Format(domain.ISODateFormat),
		DocumentRef:      &docRef,
		ExtractionStatus: domain.ExtractionStatusProcessing,
	})
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}

	params := s.runExtraction(ctx, input)

	cert, err = s.certificates.Update(ctx, userID, cert.ID, params)
	if err != nil {
		return nil, fmt.Errorf("apply extraction result: %w", err)
	}

	if err := s.reconciler.ReconcileAll(ctx, userID); err != nil {
		return nil, fmt.Errorf("reconcile requirements: %w", err)
	}

	s.log.InfoContext(ctx, "certificate uploaded",
		slog.String("user_id", userID.String()),
		slog.String("certificate_id", cert.ID.String()),
		slog.String("extraction_status", string(cert.ExtractionStatus)),
	)

	return cert, nil
}

// runExtraction calls the vision provider and turns whatever happens into
// certificate field updates with a terminal status.
func (s *Service) runExtraction(ctx context.Context, input UploadCertificateInput) domain.CertificateUpdateParams {
	raw, err := s.vision.ExtractCertificate(ctx, input.Data, input.MediaType)
	if err != nil {
		status, advisory := extraction.ClassifyCallFailure(err)
		s.log.WarnContext(ctx, "vision extraction failed",
			slog.String("error", err.Error()),
			slog.String("status", string(status)),
		)
		fallback := fallbackTitle(input.Filename)
		return domain.CertificateUpdateParams{
			Title:            &fallback,
			ExtractionStatus: &status,
			ExtractionError:  &advisory,
		}
	}

	result := s.normalizer.Normalize(raw)

	params := domain.CertificateUpdateParams{
		Title:             result.Fields.Title,
		Provider:          result.Fields.Provider,
		Credits:           result.Fields.Credits,
		CreditTypes:       result.Fields.CreditTypes,
		Subject:           result.Fields.Subject,
		CompletionDate:    result.Fields.CompletionDate,
		CertificateNumber: result.Fields.CertificateNumber,
		ExtractionStatus:  &result.Status,
		ExtractionData:    result.Data,
		ExtractionError:   result.Advisory,
	}
	if params.Title == nil {
		fallback := fallbackTitle(input.Filename)
		params.Title = &fallback
	}
	return params
}

func fallbackTitle(filename string) string {
	if filename == "" {
		return "Uploaded certificate"
	}
	return filename
}
