// Package certificate implements the Certificate repository using PostgreSQL.
package certificate

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/credtrack/credtrack-backend/internal/adapter/postgres"
	"github.com/credtrack/credtrack-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "certificates"

var columns = []string{
	"id", "user_id", "title", "provider", "credits", "credit_types",
	"subject", "completion_date", "expiration_date", "certificate_number",
	"document_ref", "extraction_status", "extraction_data", "extraction_error",
	"registry_imported", "created_at", "updated_at",
}

// Repo provides certificate persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new certificate repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new certificate and returns the stored row.
func (r *Repo) Create(ctx context.Context, cert *domain.Certificate) (*domain.Certificate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	extractionData, err := marshalJSONB(cert.ExtractionData)
	if err != nil {
		return nil, fmt.Errorf("certificate %s: encode extraction data: %w", cert.ID, err)
	}

	now := time.Now()
	sql, args, err := qb.Insert(table).
		Columns(columns...).
		Values(
			cert.ID, cert.UserID, cert.Title, cert.Provider, cert.Credits,
			cert.CreditTypes, cert.Subject, cert.CompletionDate,
			cert.ExpirationDate, cert.CertificateNumber, cert.DocumentRef,
			string(cert.ExtractionStatus), extractionData, cert.ExtractionError,
			cert.RegistryImported, now, now,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "certificate", cert.ID)
	}
	return row, nil
}

// GetByID returns a certificate owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, certID uuid.UUID) (*domain.Certificate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": certID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "certificate", certID)
	}
	return row, nil
}

// Update applies non-nil params to a certificate owned by the given user and
// returns the updated row.
func (r *Repo) Update(ctx context.Context, userID, certID uuid.UUID, params domain.CertificateUpdateParams) (*domain.Certificate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update(table).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": certID, "user_id": userID})

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Provider != nil {
		update = update.Set("provider", *params.Provider)
	}
	if params.Credits != nil {
		update = update.Set("credits", *params.Credits)
	}
	if params.CreditTypes != nil {
		update = update.Set("credit_types", params.CreditTypes)
	}
	if params.Subject != nil {
		update = update.Set("subject", *params.Subject)
	}
	if params.CompletionDate != nil {
		update = update.Set("completion_date", *params.CompletionDate)
	}
	if params.ExpirationDate != nil {
		update = update.Set("expiration_date", *params.ExpirationDate)
	}
	if params.CertificateNumber != nil {
		update = update.Set("certificate_number", *params.CertificateNumber)
	}
	if params.ExtractionStatus != nil {
		update = update.Set("extraction_status", string(*params.ExtractionStatus))
	}
	if params.ExtractionData != nil {
		data, err := marshalJSONB(params.ExtractionData)
		if err != nil {
			return nil, fmt.Errorf("certificate %s: encode extraction data: %w", certID, err)
		}
		update = update.Set("extraction_data", data)
	}
	if params.ExtractionError != nil {
		update = update.Set("extraction_error", *params.ExtractionError)
	}

	sql, args, err := update.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	row, err := scanRow(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "certificate", certID)
	}
	return row, nil
}

// Delete removes a certificate owned by the given user.
// Returns domain.ErrNotFound when no row matches.
func (r *Repo) Delete(ctx context.Context, userID, certID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).
		Where(squirrel.Eq{"id": certID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "certificate", certID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "certificate", certID)
	}
	return nil
}

// List returns the user's certificates, newest completion first. The filter's
// credit type matches anywhere in the tag set; the year matches the
// completion date prefix.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.CertificateFilter) ([]*domain.Certificate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("completion_date DESC", "created_at DESC")

	if filter.CreditType != nil {
		sel = sel.Where("? = ANY(credit_types)", *filter.CreditType)
	}
	if filter.Year != nil {
		sel = sel.Where(squirrel.Like{"completion_date": strconv.Itoa(*filter.Year) + "-%"})
	}

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "certificate", uuid.Nil)
	}
	defer rows.Close()

	var out []*domain.Certificate
	for rows.Next() {
		cert, err := scanRow(rows)
		if err != nil {
			return nil, postgres.MapError(err, "certificate", uuid.Nil)
		}
		out = append(out, cert)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "certificate", uuid.Nil)
	}
	return out, nil
}

// ListByUser returns every certificate the user owns, for reconciliation and
// reporting scans.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error) {
	return r.List(ctx, userID, domain.CertificateFilter{})
}

// CertificateStats returns the user's certificate count and credit sum.
func (r *Repo) CertificateStats(ctx context.Context, userID uuid.UUID) (int, float64, error) {
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
		return 0, 0, postgres.MapError(err, "certificate", uuid.Nil)
	}
	return count, credits, nil
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

func scanRow(row pgx.Row) (*domain.Certificate, error) {
	var (
		cert           domain.Certificate
		status         string
		extractionData []byte
	)
	err := row.Scan(
		&cert.ID, &cert.UserID, &cert.Title, &cert.Provider, &cert.Credits,
		&cert.CreditTypes, &cert.Subject, &cert.CompletionDate,
		&cert.ExpirationDate, &cert.CertificateNumber, &cert.DocumentRef,
		&status, &extractionData, &cert.ExtractionError,
		&cert.RegistryImported, &cert.CreatedAt, &cert.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cert.ExtractionStatus = domain.ExtractionStatus(status)
	if len(extractionData) > 0 {
		if err := json.Unmarshal(extractionData, &cert.ExtractionData); err != nil {
			return nil, fmt.Errorf("decode extraction data: %w", err)
		}
	}
	return &cert, nil
}

func marshalJSONB(data map[string]any) ([]byte, error) {
	if data == nil {
		return nil, nil
	}
	return json.Marshal(data)
}
