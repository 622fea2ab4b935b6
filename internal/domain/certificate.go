package domain

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is one completed formal CME activity owned by a single user.
// Dates are stored as ISO 8601 calendar-date strings (YYYY-MM-DD).
type Certificate struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Title    string  `json:"title"`
	Provider string  `json:"provider"`
	Credits  float64 `json:"credits"`

	// CreditTypes is the ordered, non-empty set of credit-type tags.
	// Insertion order is preserved for display; the first element is
	// exposed as the legacy single-tag value.
	CreditTypes []string `json:"credit_types"`

	Subject           *string `json:"subject,omitempty"`
	CompletionDate    string  `json:"completion_date"`
	ExpirationDate    *string `json:"expiration_date,omitempty"`
	CertificateNumber *string `json:"certificate_number,omitempty"`

	// DocumentRef points at the uploaded source document, when there is one.
	DocumentRef *string `json:"document_ref,omitempty"`

	ExtractionStatus ExtractionStatus `json:"extraction_status"`
	// ExtractionData holds the raw and normalized fields of the last
	// extraction attempt, kept for user review.
	ExtractionData map[string]any `json:"extraction_data,omitempty"`
	// ExtractionError is the human-readable advisory for a partial or
	// failed extraction.
	ExtractionError *string `json:"extraction_error,omitempty"`

	// RegistryImported marks certificates pulled from an external
	// credentialing registry rather than entered by hand.
	RegistryImported bool `json:"registry_imported"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PrimaryCreditType returns the first credit-type tag, or "" when the set
// has not been populated yet.
func (c *Certificate) PrimaryCreditType() string {
	if len(c.CreditTypes) == 0 {
		return ""
	}
	return c.CreditTypes[0]
}

// HasCreditType reports whether the certificate carries the given tag.
func (c *Certificate) HasCreditType(tag string) bool {
	for _, t := range c.CreditTypes {
		if t == tag {
			return true
		}
	}
	return false
}

// CertificateFilter narrows certificate listings. Nil fields impose no
// constraint. CreditType matches against the full tag set, including
// records where the tag is not the primary one.
type CertificateFilter struct {
	CreditType *string
	Year       *int
}

// CertificateUpdateParams holds the mutable certificate fields. Nil pointers
// leave the stored value untouched.
type CertificateUpdateParams struct {
	Title             *string
	Provider          *string
	Credits           *float64
	CreditTypes       []string
	Subject           *string
	CompletionDate    *string
	ExpirationDate    *string
	CertificateNumber *string

	ExtractionStatus *ExtractionStatus
	ExtractionData   map[string]any
	ExtractionError  *string
}
