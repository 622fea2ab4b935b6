package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/internal/service/credittype"
)

// creditTypeService defines the minimal interface needed by CreditTypeHandler.
type creditTypeService interface {
	CatalogForUser(ctx context.Context) ([]domain.CreditType, []*domain.CustomCreditType, error)
	FullCatalog(ctx context.Context) (map[domain.Profession][]domain.CreditType, error)
	CreateCustomType(ctx context.Context, input credittype.CreateCustomTypeInput) (*domain.CustomCreditType, error)
	ListCustomTypes(ctx context.Context) ([]*domain.CustomCreditType, error)
	DeleteCustomType(ctx context.Context, typeID uuid.UUID) error
}

// CreditTypeHandler serves credit type catalog REST endpoints.
type CreditTypeHandler struct {
	svc creditTypeService
	log *slog.Logger
}

// NewCreditTypeHandler creates a CreditTypeHandler.
func NewCreditTypeHandler(svc creditTypeService, logger *slog.Logger) *CreditTypeHandler {
	return &CreditTypeHandler{svc: svc, log: logger.With("handler", "credittypes")}
}

type catalogResponse struct {
	Standard []domain.CreditType        `json:"standard"`
	Custom   []*domain.CustomCreditType `json:"custom"`
}

type createCustomTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Catalog handles GET /api/cme-types. Returns the standard types for the
// caller's profession plus their custom types.
func (h *CreditTypeHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	standard, custom, err := h.svc.CatalogForUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if custom == nil {
		custom = []*domain.CustomCreditType{}
	}
	writeJSON(w, http.StatusOK, catalogResponse{Standard: standard, Custom: custom})
}

// FullCatalog handles GET /api/cme-types/all.
func (h *CreditTypeHandler) FullCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.svc.FullCatalog(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}

// CreateCustom handles POST /api/cme-types/custom.
func (h *CreditTypeHandler) CreateCustom(w http.ResponseWriter, r *http.Request) {
	var req createCustomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ct, err := h.svc.CreateCustomType(r.Context(), credittype.CreateCustomTypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ct)
}

// ListCustom handles GET /api/cme-types/custom.
func (h *CreditTypeHandler) ListCustom(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListCustomTypes(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if types == nil {
		types = []*domain.CustomCreditType{}
	}
	writeJSON(w, http.StatusOK, types)
}

// DeleteCustom handles DELETE /api/cme-types/custom/{id}.
func (h *CreditTypeHandler) DeleteCustom(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCustomType(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
