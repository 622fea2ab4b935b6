package domain

// ExtractionStatus represents the quality classification of an automated
// document extraction attempt for one certificate.
type ExtractionStatus string

const (
	ExtractionStatusNone       ExtractionStatus = "none"
	ExtractionStatusProcessing ExtractionStatus = "processing"
	ExtractionStatusCompleted  ExtractionStatus = "completed"
	ExtractionStatusPartial    ExtractionStatus = "partial"
	ExtractionStatusFailed     ExtractionStatus = "failed"
)

func (s ExtractionStatus) String() string { return string(s) }

func (s ExtractionStatus) IsValid() bool {
	switch s {
	case ExtractionStatusNone, ExtractionStatusProcessing,
		ExtractionStatusCompleted, ExtractionStatusPartial, ExtractionStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether the status is a final extraction outcome.
// Terminal statuses never transition back to processing.
func (s ExtractionStatus) IsTerminal() bool {
	switch s {
	case ExtractionStatusCompleted, ExtractionStatusPartial, ExtractionStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal
// extraction-status transition: none → processing → completed|partial|failed.
func (s ExtractionStatus) CanTransitionTo(next ExtractionStatus) bool {
	switch s {
	case ExtractionStatusNone:
		return next == ExtractionStatusProcessing
	case ExtractionStatusProcessing:
		return next.IsTerminal()
	}
	return false
}

// Profession represents the medical profession of a user. It selects the
// applicable slice of the credit-type catalog.
type Profession string

const (
	ProfessionPhysician Profession = "physician"
	ProfessionNPPA      Profession = "np_pa"
	ProfessionNurse     Profession = "nurse"
)

func (p Profession) String() string { return string(p) }

func (p Profession) IsValid() bool {
	switch p {
	case ProfessionPhysician, ProfessionNPPA, ProfessionNurse:
		return true
	}
	return false
}

// ActivityType classifies a self-reported credit-earning activity.
type ActivityType string

const (
	ActivityTypeSelfStudy     ActivityType = "self_study"
	ActivityTypeTeaching      ActivityType = "teaching"
	ActivityTypePeerReview    ActivityType = "peer_review"
	ActivityTypeJournalReview ActivityType = "journal_review"
	ActivityTypeCommittee     ActivityType = "committee"
	ActivityTypePresentation  ActivityType = "presentation"
	ActivityTypeOther         ActivityType = "other"
)

func (a ActivityType) String() string { return string(a) }

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityTypeSelfStudy, ActivityTypeTeaching, ActivityTypePeerReview,
		ActivityTypeJournalReview, ActivityTypeCommittee, ActivityTypePresentation,
		ActivityTypeOther:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}
