package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	GetProfile(ctx context.Context) (*user.Profile, error)
	UpdateProfession(ctx context.Context, profession domain.Profession) (*domain.User, error)
	ValidateNPI(ctx context.Context, number string) (*domain.User, error)
	RemoveNPI(ctx context.Context) (*domain.User, error)
}

// UserHandler serves profile REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type profileResponse struct {
	User               *domain.User `json:"user"`
	TotalCertificates  int          `json:"total_certificates"`
	TotalSelfReported  int          `json:"total_self_reported"`
	TotalCredits       float64      `json:"total_credits"`
	ActiveRequirements int          `json:"active_requirements"`
}

type updateProfessionRequest struct {
	Profession string `json:"profession"`
}

type validateNPIRequest struct {
	NPINumber string `json:"npi_number"`
}

// GetProfile handles GET /api/users/profile.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		User:               profile.User,
		TotalCertificates:  profile.TotalCertificates,
		TotalSelfReported:  profile.TotalSelfReported,
		TotalCredits:       profile.TotalCredits,
		ActiveRequirements: profile.ActiveRequirements,
	})
}

// UpdateProfession handles PUT /api/users/profession.
func (h *UserHandler) UpdateProfession(w http.ResponseWriter, r *http.Request) {
	var req updateProfessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfession(r.Context(), domain.Profession(req.Profession))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

// ValidateNPI handles POST /api/users/npi/validate.
func (h *UserHandler) ValidateNPI(w http.ResponseWriter, r *http.Request) {
	var req validateNPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.ValidateNPI(r.Context(), req.NPINumber)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

// RemoveNPI handles DELETE /api/users/npi.
func (h *UserHandler) RemoveNPI(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.RemoveNPI(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}
