// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"encoding/json"
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

const table = "users"

var columns = []string{
	"id", "email", "name", "password_hash", "role", "profession",
	"npi_number", "npi_verified", "npi_data", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user. Returns domain.ErrAlreadyExists when the email
// is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	npiData, err := marshalJSONB(u.NPIData)
	if err != nil {
		return nil, fmt.Errorf("user %s: encode npi data: %w", u.ID, err)
	}

	now := time.Now()
	sql, args, err := qb.Insert(table).
		Columns(columns...).
		Values(
			u.ID, u.Email, u.Name, u.PasswordHash, string(u.Role),
			professionValue(u.Profession), u.NPINumber, u.NPIVerified,
			npiData, now, now,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return row, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return row, nil
}

// UpdateProfession sets the user's profession and returns the updated row.
func (r *Repo) UpdateProfession(ctx context.Context, id uuid.UUID, profession domain.Profession) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update(table).
		Set("profession", string(profession)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row, nil
}

// SetNPI stores the NPI number, its verification flag and the registry
// snapshot, and returns the updated row.
func (r *Repo) SetNPI(ctx context.Context, id uuid.UUID, number string, verified bool, data map[string]any) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	npiData, err := marshalJSONB(data)
	if err != nil {
		return nil, fmt.Errorf("user %s: encode npi data: %w", id, err)
	}

	sql, args, err := qb.Update(table).
		Set("npi_number", number).
		Set("npi_verified", verified).
		Set("npi_data", npiData).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row, nil
}

// ClearNPI removes the stored NPI number and snapshot, and returns the
// updated row.
func (r *Repo) ClearNPI(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update(table).
		Set("npi_number", nil).
		Set("npi_verified", false).
		Set("npi_data", nil).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func columnList() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

func scanRow(row pgx.Row) (*domain.User, error) {
	var (
		u          domain.User
		role       string
		profession *string
		npiData    []byte
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role, &profession,
		&u.NPINumber, &u.NPIVerified, &npiData, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Role = domain.UserRole(role)
	if profession != nil {
		p := domain.Profession(*profession)
		u.Profession = &p
	}
	if len(npiData) > 0 {
		if err := json.Unmarshal(npiData, &u.NPIData); err != nil {
			return nil, fmt.Errorf("decode npi data: %w", err)
		}
	}
	return &u, nil
}

func professionValue(p *domain.Profession) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}

func marshalJSONB(data map[string]any) ([]byte, error) {
	if data == nil {
		return nil, nil
	}
	return json.Marshal(data)
}
