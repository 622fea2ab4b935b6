package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/credtrack/credtrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a placeholder password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$test-hash-" + suffix,
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCertificate creates a certificate for the user with the given credit
// tags and completion date. Returns the filled domain.Certificate.
func SeedCertificate(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, creditTypes []string, completionDate string) domain.Certificate {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	cert := domain.Certificate{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            "Test Activity " + suffix,
		Provider:         "Test Provider " + suffix,
		Credits:          2.5,
		CreditTypes:      creditTypes,
		CompletionDate:   completionDate,
		ExtractionStatus: domain.ExtractionStatusNone,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO certificates
		   (id, user_id, title, provider, credits, credit_types, completion_date, extraction_status, registry_imported, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		cert.ID, cert.UserID, cert.Title, cert.Provider, cert.Credits, cert.CreditTypes,
		cert.CompletionDate, string(cert.ExtractionStatus), cert.RegistryImported, cert.CreatedAt, cert.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCertificate insert: %v", err)
	}

	return cert
}

// SeedSelfReported creates a self-reported credit for the user.
// Returns the filled domain.SelfReportedCredit.
func SeedSelfReported(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, creditTypes []string, completionDate string) domain.SelfReportedCredit {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.SelfReportedCredit{
		ID:             uuid.New(),
		UserID:         userID,
		ActivityType:   domain.ActivityTypeSelfStudy,
		Title:          "Test Self-Study " + suffix,
		Credits:        1.5,
		CreditTypes:    creditTypes,
		CompletionDate: completionDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO self_reported_credits
		   (id, user_id, activity_type, title, credits, credit_types, completion_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.UserID, string(rec.ActivityType), rec.Title, rec.Credits, rec.CreditTypes,
		rec.CompletionDate, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSelfReported insert: %v", err)
	}

	return rec
}

// SeedRequirement creates an active requirement for the user with the given
// accepted credit tags and due date. Returns the filled domain.Requirement.
func SeedRequirement(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, creditTypes []string, dueDate string) domain.Requirement {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	req := domain.Requirement{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            "Test Requirement " + suffix,
		Kind:            "license_renewal",
		CreditTypes:     creditTypes,
		CreditsRequired: 25,
		DueDate:         dueDate,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO requirements
		   (id, user_id, name, kind, credit_types, providers, subjects, credits_required, due_date, is_active,
		    credits_earned, matching_certificates, matching_self_reported, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		req.ID, req.UserID, req.Name, req.Kind, req.CreditTypes, []string{}, []string{},
		req.CreditsRequired, req.DueDate, req.IsActive,
		req.CreditsEarned, req.MatchingCertificates, req.MatchingSelfReported, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequirement insert: %v", err)
	}

	return req
}

// SeedCustomCreditType creates an owner-defined credit type for the user.
// Returns the filled domain.CustomCreditType.
func SeedCustomCreditType(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.CustomCreditType {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	ct := domain.CustomCreditType{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO custom_credit_types (id, user_id, name, created_at)
		 VALUES ($1, $2, $3, $4)`,
		ct.ID, ct.UserID, ct.Name, ct.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCustomCreditType insert: %v", err)
	}

	return ct
}
