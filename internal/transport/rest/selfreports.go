package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/internal/service/selfreport"
)

// selfReportService defines the minimal interface needed by SelfReportHandler.
type selfReportService interface {
	CreateSelfReport(ctx context.Context, input selfreport.CreateSelfReportInput) (*domain.SelfReportedCredit, error)
	GetSelfReport(ctx context.Context, recID uuid.UUID) (*domain.SelfReportedCredit, error)
	ListSelfReports(ctx context.Context) ([]*domain.SelfReportedCredit, error)
	UpdateSelfReport(ctx context.Context, input selfreport.UpdateSelfReportInput) (*domain.SelfReportedCredit, error)
	DeleteSelfReport(ctx context.Context, recID uuid.UUID) error
}

// SelfReportHandler serves self-reported credit REST endpoints.
type SelfReportHandler struct {
	svc selfReportService
	log *slog.Logger
}

// NewSelfReportHandler creates a SelfReportHandler.
func NewSelfReportHandler(svc selfReportService, logger *slog.Logger) *SelfReportHandler {
	return &SelfReportHandler{svc: svc, log: logger.With("handler", "selfreports")}
}

type createSelfReportRequest struct {
	ActivityType   string   `json:"activity_type"`
	Title          string   `json:"title"`
	Credits        float64  `json:"credits"`
	CreditTypes    []string `json:"credit_types"`
	CompletionDate string   `json:"completion_date"`
	HoursSpent     *float64 `json:"hours_spent"`
	ReferenceLink  *string  `json:"reference_link"`
}

type updateSelfReportRequest struct {
	ActivityType   *string  `json:"activity_type"`
	Title          *string  `json:"title"`
	Credits        *float64 `json:"credits"`
	CreditTypes    []string `json:"credit_types"`
	CompletionDate *string  `json:"completion_date"`
	HoursSpent     *float64 `json:"hours_spent"`
	ReferenceLink  *string  `json:"reference_link"`
}

// Create handles POST /api/self-reported.
func (h *SelfReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSelfReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.CreateSelfReport(r.Context(), selfreport.CreateSelfReportInput{
		ActivityType:   domain.ActivityType(req.ActivityType),
		Title:          req.Title,
		Credits:        req.Credits,
		CreditTypes:    req.CreditTypes,
		CompletionDate: req.CompletionDate,
		HoursSpent:     req.HoursSpent,
		ReferenceLink:  req.ReferenceLink,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// Get handles GET /api/self-reported/{id}.
func (h *SelfReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.svc.GetSelfReport(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// List handles GET /api/self-reported.
func (h *SelfReportHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.ListSelfReports(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if recs == nil {
		recs = []*domain.SelfReportedCredit{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// Update handles PUT /api/self-reported/{id}.
func (h *SelfReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req updateSelfReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := selfreport.UpdateSelfReportInput{
		RecordID:       id,
		Title:          req.Title,
		Credits:        req.Credits,
		CreditTypes:    req.CreditTypes,
		CompletionDate: req.CompletionDate,
		HoursSpent:     req.HoursSpent,
		ReferenceLink:  req.ReferenceLink,
	}
	if req.ActivityType != nil {
		at := domain.ActivityType(*req.ActivityType)
		input.ActivityType = &at
	}

	rec, err := h.svc.UpdateSelfReport(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/self-reported/{id}.
func (h *SelfReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteSelfReport(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
