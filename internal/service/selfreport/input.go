package selfreport

import (
	"strings"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

// CreateSelfReportInput holds the parameters for recording a self-reported
// credit activity.
type CreateSelfReportInput struct {
	ActivityType   domain.ActivityType
	Title          string
	Credits        float64
	CreditTypes    []string
	CompletionDate string
	HoursSpent     *float64
	ReferenceLink  *string
}

// Validate checks all fields and collects all errors.
func (i CreateSelfReportInput) Validate() error {
	var errs []domain.FieldError

	if !i.ActivityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activity_type", Message: "invalid value"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}

	if i.Credits < 0 {
		errs = append(errs, domain.FieldError{Field: "credits", Message: "must not be negative"})
	}
	if i.HoursSpent != nil && *i.HoursSpent < 0 {
		errs = append(errs, domain.FieldError{Field: "hours_spent", Message: "must not be negative"})
	}

	if i.CompletionDate == "" {
		errs = append(errs, domain.FieldError{Field: "completion_date", Message: "required"})
	} else if !domain.IsISODate(i.CompletionDate) {
		errs = append(errs, domain.FieldError{Field: "completion_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSelfReportInput holds the parameters for updating a self-reported
// credit. Nil pointers leave fields unchanged.
type UpdateSelfReportInput struct {
	RecordID       uuid.UUID
	ActivityType   *domain.ActivityType
	Title          *string
	Credits        *float64
	CreditTypes    []string
	CompletionDate *string
	HoursSpent     *float64
	ReferenceLink  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateSelfReportInput) Validate() error {
	var errs []domain.FieldError

	if i.RecordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	if i.ActivityType != nil && !i.ActivityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activity_type", Message: "invalid value"})
	}
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Credits != nil && *i.Credits < 0 {
		errs = append(errs, domain.FieldError{Field: "credits", Message: "must not be negative"})
	}
	if i.CompletionDate != nil && !domain.IsISODate(*i.CompletionDate) {
		errs = append(errs, domain.FieldError{Field: "completion_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
