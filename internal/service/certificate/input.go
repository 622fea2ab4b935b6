package certificate

import (
	"strings"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

const (
	maxTitleLen      = 255
	maxProviderLen   = 255
	maxSubjectLen    = 255
	maxCertNumberLen = 100
)

// CreateCertificateInput holds the parameters for creating a certificate
// by hand. The credit-type set defaults to the standard physician tag when
// left empty.
type CreateCertificateInput struct {
	Title             string
	Provider          string
	Credits           float64
	CreditTypes       []string
	Subject           *string
	CompletionDate    string
	ExpirationDate    *string
	CertificateNumber *string
}

// Validate checks all fields and collects all errors.
func (i CreateCertificateInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}

	if len(strings.TrimSpace(i.Provider)) > maxProviderLen {
		errs = append(errs, domain.FieldError{Field: "provider", Message: "max 255 characters"})
	}

	if i.Credits < 0 {
		errs = append(errs, domain.FieldError{Field: "credits", Message: "must not be negative"})
	}

	if i.CompletionDate == "" {
		errs = append(errs, domain.FieldError{Field: "completion_date", Message: "required"})
	} else if !domain.IsISODate(i.CompletionDate) {
		errs = append(errs, domain.FieldError{Field: "completion_date", Message: "must be YYYY-MM-DD"})
	}

	if i.ExpirationDate != nil && *i.ExpirationDate != "" && !domain.IsISODate(*i.ExpirationDate) {
		errs = append(errs, domain.FieldError{Field: "expiration_date", Message: "must be YYYY-MM-DD"})
	}

	if i.Subject != nil && len(*i.Subject) > maxSubjectLen {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "max 255 characters"})
	}
	if i.CertificateNumber != nil && len(*i.CertificateNumber) > maxCertNumberLen {
		errs = append(errs, domain.FieldError{Field: "certificate_number", Message: "max 100 characters"})
	}

	for _, tag := range i.CreditTypes {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, domain.FieldError{Field: "credit_types", Message: "blank entries not allowed"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCertificateInput holds the parameters for updating a certificate.
// Nil pointers leave fields unchanged; a non-nil CreditTypes slice replaces
// the stored set and must stay non-empty.
type UpdateCertificateInput struct {
	CertificateID     uuid.UUID
	Title             *string
	Provider          *string
	Credits           *float64
	CreditTypes       []string
	Subject           *string
	CompletionDate    *string
	ExpirationDate    *string
	CertificateNumber *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCertificateInput) Validate() error {
	var errs []domain.FieldError

	if i.CertificateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "certificate_id", Message: "required"})
	}

	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
		}
	}

	if i.Credits != nil && *i.Credits < 0 {
		errs = append(errs, domain.FieldError{Field: "credits", Message: "must not be negative"})
	}

	if i.CompletionDate != nil && !domain.IsISODate(*i.CompletionDate) {
		errs = append(errs, domain.FieldError{Field: "completion_date", Message: "must be YYYY-MM-DD"})
	}
	if i.ExpirationDate != nil && *i.ExpirationDate != "" && !domain.IsISODate(*i.ExpirationDate) {
		errs = append(errs, domain.FieldError{Field: "expiration_date", Message: "must be YYYY-MM-DD"})
	}

	if i.CreditTypes != nil {
		if len(i.CreditTypes) == 0 {
			errs = append(errs, domain.FieldError{Field: "credit_types", Message: "must not be empty"})
		}
		for _, tag := range i.CreditTypes {
			if strings.TrimSpace(tag) == "" {
				errs = append(errs, domain.FieldError{Field: "credit_types", Message: "blank entries not allowed"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UploadCertificateInput holds an uploaded certificate document.
type UploadCertificateInput struct {
	Filename  string
	MediaType string
	Data      []byte
}

// Validate checks all fields and collects all errors.
func (i UploadCertificateInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Data) == 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	switch i.MediaType {
	case "image/jpeg", "image/png", "image/webp", "image/gif", "application/pdf":
	default:
		errs = append(errs, domain.FieldError{Field: "file", Message: "unsupported media type"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RegistryImportInput holds records scanned from an external credentialing
// registry, typically via a QR code payload.
type RegistryImportInput struct {
	Records []RegistryRecord
}

// RegistryRecord is one credential entry from a registry payload.
type RegistryRecord struct {
	Title          string
	Provider       string
	Credits        float64
	CreditType     string
	CompletionDate string
}

// Validate checks all fields and collects all errors.
func (i RegistryImportInput) Validate() error {
	if len(i.Records) == 0 {
		return domain.NewValidationError("records", "at least one record required")
	}
	return nil
}

// BulkImportInput holds rows for a manual bulk import. Row errors are
// reported per row, not as a validation failure of the whole batch.
type BulkImportInput struct {
	Rows []BulkImportRow
}

// BulkImportRow is one certificate row in a bulk import.
type BulkImportRow struct {
	Title          string
	Provider       string
	Credits        float64
	CreditTypes    []string
	Subject        *string
	CompletionDate string
}

// Validate checks all fields and collects all errors.
func (i BulkImportInput) Validate() error {
	if len(i.Rows) == 0 {
		return domain.NewValidationError("rows", "at least one row required")
	}
	if len(i.Rows) > 500 {
		return domain.NewValidationError("rows", "max 500 rows per import")
	}
	return nil
}
