// Package requirement implements the Requirement repository using PostgreSQL.
package requirement

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/credtrack/credtrack-backend/internal/adapter/postgres"
	"github.com/credtrack/credtrack-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "requirements"

var columns = []string{
	"id", "user_id", "name", "kind", "credit_types", "providers", "subjects",
	"credits_required", "start_year", "end_year", "due_date", "notes",
	"is_active", "credits_earned", "matching_certificates",
	"matching_self_reported", "created_at", "updated_at",
}

// Repo provides requirement persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new requirement repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new requirement and returns the stored row.
func (r *Repo) Create(ctx context.Context, req *domain.Requirement) (*domain.Requirement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now()
	sql, args, err := qb.Insert(table).
		Columns(columns...).
		Values(
			req.ID, req.UserID, req.Name, req.Kind, nonNilStrings(req.CreditTypes),
			nonNilStrings(req.Providers), nonNilStrings(req.Subjects), req.CreditsRequired, req.StartYear,
			req.EndYear, req.DueDate, req.Notes, req.IsActive,
			req.CreditsEarned, req.MatchingCertificates,
			req.MatchingSelfReported, now, now,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "requirement", req.ID)
	}
	return row, nil
}

// GetByID returns a requirement owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, reqID uuid.UUID) (*domain.Requirement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": reqID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "requirement", reqID)
	}
	return row, nil
}

// Update applies non-nil params and returns the updated row. The derived
// progress columns are only written through SaveProgress.
func (r *Repo) Update(ctx context.Context, userID, reqID uuid.UUID, params domain.RequirementUpdateParams) (*domain.Requirement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update(table).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": reqID, "user_id": userID})

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Kind != nil {
		update = update.Set("kind", *params.Kind)
	}
	if params.CreditTypes != nil {
		update = update.Set("credit_types", params.CreditTypes)
	}
	if params.Providers != nil {
		update = update.Set("providers", params.Providers)
	}
	if params.Subjects != nil {
		update = update.Set("subjects", params.Subjects)
	}
	if params.CreditsRequired != nil {
		update = update.Set("credits_required", *params.CreditsRequired)
	}
	if params.StartYear != nil {
		update = update.Set("start_year", *params.StartYear)
	}
	if params.EndYear != nil {
		update = update.Set("end_year", *params.EndYear)
	}
	if params.DueDate != nil {
		update = update.Set("due_date", *params.DueDate)
	}
	if params.Notes != nil {
		update = update.Set("notes", *params.Notes)
	}
	if params.IsActive != nil {
		update = update.Set("is_active", *params.IsActive)
	}

	sql, args, err := update.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "requirement", reqID)
	}
	return row, nil
}

// Delete removes a requirement owned by the given user.
// Returns domain.ErrNotFound when no row matches.
func (r *Repo) Delete(ctx context.Context, userID, reqID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).
		Where(squirrel.Eq{"id": reqID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "requirement", reqID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "requirement", reqID)
	}
	return nil
}

// List returns the user's requirements sorted by due date. activeOnly
// restricts the listing to active requirements.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*domain.Requirement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("due_date ASC", "created_at ASC")

	if activeOnly {
		sel = sel.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "requirement", uuid.Nil)
	}
	defer rows.Close()

	var out []*domain.Requirement
	for rows.Next() {
		req, err := scanRow(rows)
		if err != nil {
			return nil, postgres.MapError(err, "requirement", uuid.Nil)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "requirement", uuid.Nil)
	}
	return out, nil
}

// SaveProgress overwrites the derived progress columns for one requirement.
func (r *Repo) SaveProgress(ctx context.Context, reqID uuid.UUID, progress domain.Progress) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update(table).
		Set("credits_earned", progress.CreditsEarned).
		Set("matching_certificates", progress.MatchingCertificates).
		Set("matching_self_reported", progress.MatchingSelfReported).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": reqID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "requirement", reqID)
	}
	return nil
}

// ActiveRequirementCount returns how many active requirements the user has.
func (r *Repo) ActiveRequirementCount(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build select: %w", err)
	}

	var count int
	if err := q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "requirement", uuid.Nil)
	}
	return count, nil
}

// nonNilStrings maps nil to an empty slice so the NOT NULL array columns
// never receive SQL NULL.
func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func columnList() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

func scanRow(row pgx.Row) (*domain.Requirement, error) {
	var req domain.Requirement
	err := row.Scan(
		&req.ID, &req.UserID, &req.Name, &req.Kind, &req.CreditTypes,
		&req.Providers, &req.Subjects, &req.CreditsRequired, &req.StartYear,
		&req.EndYear, &req.DueDate, &req.Notes, &req.IsActive,
		&req.CreditsEarned, &req.MatchingCertificates,
		&req.MatchingSelfReported, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
