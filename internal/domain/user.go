package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account owning certificates, self-reported credits and
// requirements. Records are never shared across users.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`

	Profession *Profession `json:"profession,omitempty"`

	// NPINumber is the user's National Provider Identifier, once linked.
	NPINumber   *string `json:"npi_number,omitempty"`
	NPIVerified bool    `json:"npi_verified"`
	// NPIData is the snapshot returned by the NPPES registry at
	// verification time.
	NPIData map[string]any `json:"npi_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RefreshToken is a stored (hashed) refresh token for session renewal.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsExpired reports whether the token has passed its expiry.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// IsRevoked reports whether the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}
