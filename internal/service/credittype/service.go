// Package credittype exposes the profession-keyed credit-type catalog and
// manages user-defined custom types.
package credittype

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/pkg/ctxutil"
)

// customTypeRepo defines the custom-credit-type persistence interface.
type customTypeRepo interface {
	Create(ctx context.Context, ct *domain.CustomCreditType) (*domain.CustomCreditType, error)
	Delete(ctx context.Context, userID, typeID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*domain.CustomCreditType, error)
	ExistsByName(ctx context.Context, userID uuid.UUID, name string) (bool, error)
}

// userReader resolves the user's profession for catalog selection.
type userReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// Service provides credit-type catalog access and custom type management.
type Service struct {
	customTypes customTypeRepo
	users       userReader
	log         *slog.Logger
}

// NewService creates a new CreditType service.
func NewService(logger *slog.Logger, customTypes customTypeRepo, users userReader) *Service {
	return &Service{
		customTypes: customTypes,
		users:       users,
		log:         logger.With("service", "credittype"),
	}
}

// CatalogForUser returns the fixed catalog for the user's profession plus
// their custom types.
func (s *Service) CatalogForUser(ctx context.Context) ([]domain.CreditType, []*domain.CustomCreditType, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	custom, err := s.customTypes.List(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list custom credit types: %w", err)
	}

	var profession domain.Profession
	if user.Profession != nil {
		profession = *user.Profession
	}

	return domain.CreditTypesFor(profession), custom, nil
}

// FullCatalog returns the complete profession-keyed taxonomy.
func (s *Service) FullCatalog(ctx context.Context) (map[domain.Profession][]domain.CreditType, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	return domain.CreditTypeCatalog(), nil
}

// CreateCustomTypeInput holds the parameters for creating a custom type.
type CreateCustomTypeInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateCustomTypeInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateCustomType adds a user-defined credit type. Names are unique per
// user, compared case-insensitively.
func (s *Service) CreateCustomType(ctx context.Context, input CreateCustomTypeInput) (*domain.CustomCreditType, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	exists, err := s.customTypes.ExistsByName(ctx, userID, strings.ToLower(name))
	if err != nil {
		return nil, fmt.Errorf("check custom type name: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}

	ct, err := s.customTypes.Create(ctx, &domain.CustomCreditType{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("create custom credit type: %w", err)
	}

	s.log.InfoContext(ctx, "custom credit type created",
		slog.String("user_id", userID.String()),
		slog.String("type_id", ct.ID.String()),
		slog.String("name", name),
	)

	return ct, nil
}

// ListCustomTypes returns the user's custom credit types.
func (s *Service) ListCustomTypes(ctx context.Context) ([]*domain.CustomCreditType, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	types, err := s.customTypes.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list custom credit types: %w", err)
	}
	return types, nil
}

// DeleteCustomType removes a custom credit type. Certificates keep the tag
// value; it simply stops resolving to a display name.
func (s *Service) DeleteCustomType(ctx context.Context, typeID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if typeID == uuid.Nil {
		return domain.NewValidationError("type_id", "required")
	}

	if err := s.customTypes.Delete(ctx, userID, typeID); err != nil {
		return fmt.Errorf("delete custom credit type: %w", err)
	}

	s.log.InfoContext(ctx, "custom credit type deleted",
		slog.String("user_id", userID.String()),
		slog.String("type_id", typeID.String()),
	)

	return nil
}
