package domain

import (
	"time"

	"github.com/google/uuid"
)

// Requirement is a user-defined credits-by-deadline target, optionally
// constrained by credit type, provider, subject, and completion-year range.
type Requirement struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	Name string `json:"name"`
	// Kind is a free-form classification (license renewal, board recert,
	// hospital, personal). It plays no part in matching.
	Kind string `json:"kind"`

	// CreditTypes is the accepted tag set. Empty means any tag matches.
	CreditTypes []string `json:"credit_types"`
	// Providers holds accepted provider substrings, matched
	// case-insensitively against certificates only. Empty means any.
	Providers []string `json:"providers"`
	// Subjects holds accepted subject substrings, certificates only.
	Subjects []string `json:"subjects"`

	CreditsRequired float64 `json:"credits_required"`
	// StartYear / EndYear bound the completion year, inclusive on both
	// ends. Nil means unbounded on that side.
	StartYear *int `json:"start_year,omitempty"`
	EndYear   *int `json:"end_year,omitempty"`

	DueDate  string  `json:"due_date"`
	Notes    *string `json:"notes,omitempty"`
	IsActive bool    `json:"is_active"`

	// Derived fields, fully owned by the reconciler. Never authored by
	// clients; overwritten on every recompute.
	CreditsEarned        float64 `json:"credits_earned"`
	MatchingCertificates int     `json:"matching_certificates"`
	MatchingSelfReported int     `json:"matching_self_reported"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Progress is the reconciler's output for one requirement.
type Progress struct {
	CreditsEarned        float64
	MatchingCertificates int
	MatchingSelfReported int
}

// RequirementUpdateParams holds the client-mutable requirement fields.
// Nil pointers leave the stored value untouched. The derived progress
// fields are deliberately absent.
type RequirementUpdateParams struct {
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
