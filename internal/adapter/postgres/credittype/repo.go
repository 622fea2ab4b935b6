// Package credittype implements the CustomCreditType repository using PostgreSQL.
package credittype

import (
	"context"
	"errors"
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

const table = "custom_credit_types"

var columns = []string{"id", "user_id", "name", "description", "created_at"}

// Repo provides custom credit-type persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new custom credit-type repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new custom credit type and returns the stored row.
func (r *Repo) Create(ctx context.Context, ct *domain.CustomCreditType) (*domain.CustomCreditType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert(table).
		Columns(columns...).
		Values(ct.ID, ct.UserID, ct.Name, ct.Description, time.Now()).
		Suffix("RETURNING id, user_id, name, description, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "custom_credit_type", ct.ID)
	}
	return row, nil
}

// Delete removes a custom credit type owned by the given user.
// Returns domain.ErrNotFound when no row matches.
func (r *Repo) Delete(ctx context.Context, userID, typeID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).
		Where(squirrel.Eq{"id": typeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "custom_credit_type", typeID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "custom_credit_type", typeID)
	}
	return nil
}

// List returns the user's custom credit types in creation order.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.CustomCreditType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "custom_credit_type", uuid.Nil)
	}
	defer rows.Close()

	var out []*domain.CustomCreditType
	for rows.Next() {
		ct, err := scanRow(rows)
		if err != nil {
			return nil, postgres.MapError(err, "custom_credit_type", uuid.Nil)
		}
		out = append(out, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "custom_credit_type", uuid.Nil)
	}
	return out, nil
}

// ExistsByName reports whether the user already has a custom type with the
// given name, compared case-insensitively.
func (r *Repo) ExistsByName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("1").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where("LOWER(name) = LOWER(?)", name).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build select: %w", err)
	}

	var one int
	err = q.QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, "custom_credit_type", uuid.Nil)
	}
	return true, nil
}

func scanRow(row pgx.Row) (*domain.CustomCreditType, error) {
	var ct domain.CustomCreditType
	err := row.Scan(&ct.ID, &ct.UserID, &ct.Name, &ct.Description, &ct.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}
