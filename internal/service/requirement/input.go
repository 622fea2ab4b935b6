package requirement

import (
	"strings"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

// CreateRequirementInput holds the parameters for creating a requirement.
type CreateRequirementInput struct {
	Name            string
	Kind            string
	CreditTypes     []string
	Providers       []string
	Subjects        []string
	CreditsRequired float64
	StartYear       *int
	EndYear         *int
	DueDate         string
	Notes           *string
}

// Validate checks all fields and collects all errors.
func (i CreateRequirementInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}

	if i.CreditsRequired <= 0 {
		errs = append(errs, domain.FieldError{Field: "credits_required", Message: "must be positive"})
	}

	if i.DueDate == "" {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "required"})
	} else if !domain.IsISODate(i.DueDate) {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "must be YYYY-MM-DD"})
	}

	errs = append(errs, validateYearRange(i.StartYear, i.EndYear)...)
	errs = append(errs, validateTags("credit_types", i.CreditTypes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRequirementInput holds the parameters for updating a requirement.
// Nil pointers leave fields unchanged; slices replace the stored set when
// non-nil. The derived progress fields are not accepted here.
type UpdateRequirementInput struct {
	RequirementID   uuid.UUID
	Name            *string
	Kind            *string
	CreditTypes     []string
	Providers       []string
	Subjects        []string
	CreditsRequired *float64
	StartYear       *int
	EndYear         *int
	DueDate         *string
	Notes           *string
	IsActive        *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateRequirementInput) Validate() error {
	var errs []domain.FieldError

	if i.RequirementID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "requirement_id", Message: "required"})
	}

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
		}
	}

	if i.CreditsRequired != nil && *i.CreditsRequired <= 0 {
		errs = append(errs, domain.FieldError{Field: "credits_required", Message: "must be positive"})
	}

	if i.DueDate != nil && !domain.IsISODate(*i.DueDate) {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "must be YYYY-MM-DD"})
	}

	errs = append(errs, validateYearRange(i.StartYear, i.EndYear)...)
	errs = append(errs, validateTags("credit_types", i.CreditTypes)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteRequirementInput holds the parameters for deleting a requirement.
type DeleteRequirementInput struct {
	RequirementID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteRequirementInput) Validate() error {
	if i.RequirementID == uuid.Nil {
		return domain.NewValidationError("requirement_id", "required")
	}
	return nil
}

func validateYearRange(start, end *int) []domain.FieldError {
	var errs []domain.FieldError
	if start != nil && (*start < 1900 || *start > 2200) {
		errs = append(errs, domain.FieldError{Field: "start_year", Message: "out of range"})
	}
	if end != nil && (*end < 1900 || *end > 2200) {
		errs = append(errs, domain.FieldError{Field: "end_year", Message: "out of range"})
	}
	if start != nil && end != nil && *start > *end {
		errs = append(errs, domain.FieldError{Field: "start_year", Message: "must not exceed end_year"})
	}
	return errs
}

func validateTags(field string, tags []string) []domain.FieldError {
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return []domain.FieldError{{Field: field, Message: "blank entries not allowed"}}
		}
	}
	return nil
}
