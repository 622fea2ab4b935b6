// Package selfreport implements the SelfReportedCredit repository using PostgreSQL.
package selfreport

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

const table = "self_reported_credits"

var columns = []string{
	"id", "user_id", "activity_type", "title", "credits", "credit_types",
	"completion_date", "hours_spent", "reference_link", "created_at", "updated_at",
}

// Repo provides self-reported-credit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new self-reported-credit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new self-reported credit and returns the stored row.
func (r *Repo) Create(ctx context.Context, rec *domain.SelfReportedCredit) (*domain.SelfReportedCredit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now()
	sql, args, err := qb.Insert(table).
		Columns(columns...).
		Values(
			rec.ID, rec.UserID, string(rec.ActivityType), rec.Title,
			rec.Credits, rec.CreditTypes, rec.CompletionDate, rec.HoursSpent,
			rec.ReferenceLink, now, now,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "self_reported_credit", rec.ID)
	}
	return row, nil
}

// GetByID returns a self-reported credit owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, recID uuid.UUID) (*domain.SelfReportedCredit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": recID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "self_reported_credit", recID)
	}
	return row, nil
}

// Update applies non-nil params and returns the updated row.
func (r *Repo) Update(ctx context.Context, userID, recID uuid.UUID, params domain.SelfReportedUpdateParams) (*domain.SelfReportedCredit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update(table).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": recID, "user_id": userID})

	if params.ActivityType != nil {
		update = update.Set("activity_type", string(*params.ActivityType))
	}
	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Credits != nil {
		update = update.Set("credits", *params.Credits)
	}
	if params.CreditTypes != nil {
		update = update.Set("credit_types", params.CreditTypes)
	}
	if params.CompletionDate != nil {
		update = update.Set("completion_date", *params.CompletionDate)
	}
	if params.HoursSpent != nil {
		update = update.Set("hours_spent", *params.HoursSpent)
	}
	if params.ReferenceLink != nil {
		update = update.Set("reference_link", *params.ReferenceLink)
	}

	sql, args, err := update.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "self_reported_credit", recID)
	}
	return row, nil
}

// Delete removes a self-reported credit owned by the given user.
// Returns domain.ErrNotFound when no row matches.
func (r *Repo) Delete(ctx context.Context, userID, recID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).
		Where(squirrel.Eq{"id": recID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "self_reported_credit", recID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "self_reported_credit", recID)
	}
	return nil
}

// List returns the user's self-reported credits, newest completion first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.SelfReportedCredit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("completion_date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "self_reported_credit", uuid.Nil)
	}
	defer rows.Close()

	var out []*domain.SelfReportedCredit
	for rows.Next() {
		rec, err := scanRow(rows)
		if err != nil {
			return nil, postgres.MapError(err, "self_reported_credit", uuid.Nil)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "self_reported_credit", uuid.Nil)
	}
	return out, nil
}

// ListByUser is List under the name the reconciler's pool reader expects.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SelfReportedCredit, error) {
	return r.List(ctx, userID)
}

// SelfReportedStats returns the user's record count and credit sum.
func (r *Repo) SelfReportedStats(ctx context.Context, userID uuid.UUID) (int, float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("COUNT(*)", "COALESCE(SUM(credits), 0)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build select: %w", err)
	}

	var count int
	var credits float64
	if err := q.QueryRow(ctx, sql, args...).Scan(&count, &credits); err != nil {
		return 0, 0, postgres.MapError(err, "self_reported_credit", uuid.Nil)
	}
	return count, credits, nil
}

func columnList() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

func scanRow(row pgx.Row) (*domain.SelfReportedCredit, error) {
	var (
		rec      domain.SelfReportedCredit
		activity string
	)
	err := row.Scan(
		&rec.ID, &rec.UserID, &activity, &rec.Title, &rec.Credits,
		&rec.CreditTypes, &rec.CompletionDate, &rec.HoursSpent,
		&rec.ReferenceLink, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.ActivityType = domain.ActivityType(activity)
	return &rec, nil
}
