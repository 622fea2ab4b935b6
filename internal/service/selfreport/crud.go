package selfreport

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// CreateSelfReport records a self-reported credit and re-reconciles the
// user's requirements. The credit-type set defaults to the standard tag
// when left empty.
func (s *Service) CreateSelfReport(ctx context.Context, input CreateSelfReportInput) (*domain.SelfReportedCredit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	creditTypes := input.CreditTypes
	if len(creditTypes) == 0 {
		creditTypes = []string{domain.DefaultCreditType}
	}

	rec, err := s.records.Create(ctx, &domain.SelfReportedCredit{
		ID:             uuid.New(),
		UserID:         userID,
		ActivityType:   input.ActivityType,
		Title:          strings.TrimSpace(input.Title),
		Credits:        input.Credits,
		CreditTypes:    creditTypes,
		CompletionDate: input.CompletionDate,
		HoursSpent:     input.HoursSpent,
		ReferenceLink:  input.ReferenceLink,
	})
	if err != nil {
		return nil, fmt.Errorf("create self-reported credit: %w", err)
	}

	if err := s.reconciler.ReconcileAll(ctx, userID); err != nil {
		return nil, fmt.Errorf("reconcile requirements: %w", err)
	}

	s.log.InfoContext(ctx, "self-reported credit created",
		slog.String("user_id", userID.String()),
		slog.String("record_id", rec.ID.String()),
		slog.String("activity_type", string(rec.ActivityType)),
	)

	return rec, nil
}

// GetSelfReport returns a single self-reported credit owned by the user.
func (s *Service) GetSelfReport(ctx context.Context, recID uuid.UUID) (*domain.SelfReportedCredit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if recID == uuid.Nil {
		return nil, domain.NewValidationError("record_id", "required")
	}

	rec, err := s.records.GetByID(ctx, userID, recID)
	if err != nil {
		return nil, fmt.Errorf("get self-reported credit: %w", err)
	}
	return rec, nil
}

// ListSelfReports returns the user's self-reported credits, newest
// completion first.
func (s *Service) ListSelfReports(ctx context.Context) ([]*domain.SelfReportedCredit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	recs, err := s.records.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list self-reported credits: %w", err)
	}
	return recs, nil
}

// UpdateSelfReport applies the provided changes and re-reconciles the
// user's requirements.
func (s *Service) UpdateSelfReport(ctx context.Context, input UpdateSelfReportInput) (*domain.SelfReportedCredit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.records.Update(ctx, userID, input.RecordID, domain.SelfReportedUpdateParams{
		ActivityType:   input.ActivityType,
		Title:          input.Title,
		Credits:        input.Credits,
		CreditTypes:    input.CreditTypes,
		CompletionDate: input.CompletionDate,
		HoursSpent:     input.HoursSpent,
		ReferenceLink:  input.ReferenceLink,
	})
	if err != nil {
		return nil, fmt.Errorf("update self-reported credit: %w", err)
	}

	if err := s.reconciler.ReconcileAll(ctx, userID); err != nil {
		return nil, fmt.Errorf("reconcile requirements: %w", err)
	}

	s.log.InfoContext(ctx, "self-reported credit updated",
		slog.String("user_id", userID.String()),
		slog.String("record_id", rec.ID.String()),
	)

	return rec, nil
}

// DeleteSelfReport removes a self-reported credit and re-reconciles the
// user's requirements.
func (s *Service) DeleteSelfReport(ctx context.Context, recID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if recID == uuid.Nil {
		return domain.NewValidationError("record_id", "required")
	}

	if err := s.records.Delete(ctx, userID, recID); err != nil {
		return fmt.Errorf("delete self-reported credit: %w", err)
	}

	if err := s.reconciler.ReconcileAll(ctx, userID); err != nil {
		return fmt.Errorf("reconcile requirements: %w", err)
	}

	s.log.InfoContext(ctx, "self-reported credit deleted",
		slog.String("user_id", userID.String()),
		slog.String("record_id", recID.String()),
	)

	return nil
}
