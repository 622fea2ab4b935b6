package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/internal/service/requirement"
)

// requirementService defines the minimal interface needed by RequirementHandler.
type requirementService interface {
	CreateRequirement(ctx context.Context, input requirement.CreateRequirementInput) (*domain.Requirement, error)
	GetRequirement(ctx context.Context, reqID uuid.UUID) (*domain.Requirement, error)
	ListRequirements(ctx context.Context, activeOnly bool) ([]*domain.Requirement, error)
	UpdateRequirement(ctx context.Context, input requirement.UpdateRequirementInput) (*domain.Requirement, error)
	DeleteRequirement(ctx context.Context, input requirement.DeleteRequirementInput) error
}

// RequirementHandler serves requirement REST endpoints.
type RequirementHandler struct {
	svc requirementService
	log *slog.Logger
}

// NewRequirementHandler creates a RequirementHandler.
func NewRequirementHandler(svc requirementService, logger *slog.Logger) *RequirementHandler {
	return &RequirementHandler{svc: svc, log: logger.With("handler", "requirements")}
}

type createRequirementRequest struct {
	Name            string   `json:"name"`
	Kind            string   `json:"kind"`
	CreditTypes     []string `json:"credit_types"`
	Providers       []string `json:"providers"`
	Subjects        []string `json:"subjects"`
	CreditsRequired float64  `json:"credits_required"`
	StartYear       *int     `json:"start_year"`
	EndYear         *int     `json:"end_year"`
	DueDate         string   `json:"due_date"`
	Notes           *string  `json:"notes"`
}

type updateRequirementRequest struct {
	Name            *string  `json:"name"`
	Kind            *string  `json:"kind"`
	CreditTypes     []string `json:"credit_types"`
	Providers       []string `json:"providers"`
	Subjects        []string `json:"subjects"`
	CreditsRequired *float64 `json:"credits_required"`
	StartYear       *int     `json:"start_year"`
	EndYear         *int     `json:"end_year"`
	DueDate         *string  `json:"due_date"`
	Notes           *string  `json:"notes"`
	IsActive        *bool    `json:"is_active"`
}

// Create handles POST /api/requirements.
func (h *RequirementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.CreateRequirement(r.Context(), requirement.CreateRequirementInput{
		Name:            req.Name,
		Kind:            req.Kind,
		CreditTypes:     req.CreditTypes,
		Providers:       req.Providers,
		Subjects:        req.Subjects,
		CreditsRequired: req.CreditsRequired,
		StartYear:       req.StartYear,
		EndYear:         req.EndYear,
		DueDate:         req.DueDate,
		Notes:           req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// Get handles GET /api/requirements/{id}.
func (h *RequirementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.svc.GetRequirement(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// List handles GET /api/requirements?active=true.
func (h *RequirementHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	recs, err := h.svc.ListRequirements(r.Context(), activeOnly)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if recs == nil {
		recs = []*domain.Requirement{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// Update handles PUT /api/requirements/{id}.
func (h *RequirementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req updateRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.UpdateRequirement(r.Context(), requirement.UpdateRequirementInput{
		RequirementID:   id,
		Name:            req.Name,
		Kind:            req.Kind,
		CreditTypes:     req.CreditTypes,
		Providers:       req.Providers,
		Subjects:        req.Subjects,
		CreditsRequired: req.CreditsRequired,
		StartYear:       req.StartYear,
		EndYear:         req.EndYear,
		DueDate:         req.DueDate,
		Notes:           req.Notes,
		IsActive:        req.IsActive,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/requirements/{id}.
func (h *RequirementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteRequirement(r.Context(), requirement.DeleteRequirementInput{RequirementID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
