package domain

import (
	"time"

	"github.com/google/uuid"
)

// SelfReportedCredit is a non-certificate credit-earning activity:
// self-study, teaching, peer review and similar. It deliberately carries no
// provider or subject fields, so requirements cannot filter this pool by
// provider or subject.
type SelfReportedCredit struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	ActivityType ActivityType `json:"activity_type"`
	Title        string       `json:"title"`
	Credits      float64      `json:"credits"`
	CreditTypes  []string     `json:"credit_types"`

	CompletionDate string   `json:"completion_date"`
	HoursSpent     *float64 `json:"hours_spent,omitempty"`
	ReferenceLink  *string  `json:"reference_link,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCreditType reports whether the record carries the given tag.
func (s *SelfReportedCredit) HasCreditType(tag string) bool {
	for _, t := range s.CreditTypes {
		if t == tag {
			return true
		}
	}
	return false
}

// SelfReportedUpdateParams holds the mutable self-reported-credit fields.
// Nil pointers leave the stored value untouched.
type SelfReportedUpdateParams struct {
	ActivityType   *ActivityType
	Title          *string
	Credits        *float64
	CreditTypes    []string
	CompletionDate *string
	HoursSpent     *float64
	ReferenceLink  *string
}
