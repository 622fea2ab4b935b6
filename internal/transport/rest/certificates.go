package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/domain"
	"github.com/credtrack/credtrack-backend/internal/service/certificate"
)

// certificateService defines the minimal interface needed by CertificateHandler.
type certificateService interface {
	CreateCertificate(ctx context.Context, input certificate.CreateCertificateInput) (*domain.Certificate, error)
	GetCertificate(ctx context.Context, certID uuid.UUID) (*domain.Certificate, error)
	ListCertificates(ctx context.Context, filter domain.CertificateFilter) ([]*domain.Certificate, error)
	UpdateCertificate(ctx context.Context, input certificate.UpdateCertificateInput) (*domain.Certificate, error)
	DeleteCertificate(ctx context.Context, certID uuid.UUID) error
	UploadCertificate(ctx context.Context, input certificate.UploadCertificateInput) (*domain.Certificate, error)
	RegistryImport(ctx context.Context, input certificate.RegistryImportInput) ([]*domain.Certificate, error)
	BulkImport(ctx context.Context, input certificate.BulkImportInput) (*certificate.BulkImportResult, error)
}

// CertificateHandler serves certificate REST endpoints.
type CertificateHandler struct {
	svc            certificateService
	log            *slog.Logger
	maxUploadBytes int64
}

// NewCertificateHandler creates a CertificateHandler.
func NewCertificateHandler(svc certificateService, logger *slog.Logger, maxUploadBytes int64) *CertificateHandler {
	return &CertificateHandler{
		svc:            svc,
		log:            logger.With("handler", "certificates"),
		maxUploadBytes: maxUploadBytes,
	}
}

type createCertificateRequest struct {
	Title             string   `json:"title"`
	Provider          string   `json:"provider"`
	Credits           float64  `json:"credits"`
	CreditTypes       []string `json:"credit_types"`
	Subject           *string  `json:"subject"`
	CompletionDate    string   `json:"completion_date"`
	ExpirationDate    *string  `json:"expiration_date"`
	CertificateNumber *string  `json:"certificate_number"`
}

type updateCertificateRequest struct {
	Title             *string  `json:"title"`
	Provider          *string  `json:"provider"`
	Credits           *float64 `json:"credits"`
	CreditTypes       []string `json:"credit_types"`
	Subject           *string  `json:"subject"`
	CompletionDate    *string  `json:"completion_date"`
	ExpirationDate    *string  `json:"expiration_date"`
	CertificateNumber *string  `json:"certificate_number"`
}

type registryImportRequest struct {
	Records []registryRecordRequest `json:"records"`
}

type registryRecordRequest struct {
	Title          string  `json:"title"`
	Provider       string  `json:"provider"`
	Credits        float64 `json:"credits"`
	CreditType     string  `json:"credit_type"`
	CompletionDate string  `json:"completion_date"`
}

type bulkImportRequest struct {
	Rows []bulkImportRowRequest `json:"rows"`
}

type bulkImportRowRequest struct {
	Title          string   `json:"title"`
	Provider       string   `json:"provider"`
	Credits        float64  `json:"credits"`
	CreditTypes    []string `json:"credit_types"`
	Subject        *string  `json:"subject"`
	CompletionDate string   `json:"completion_date"`
}

type bulkImportResponse struct {
	Imported int                  `json:"imported"`
	Errors   []bulkImportRowError `json:"errors"`
}

type bulkImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Create handles POST /api/certificates.
func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cert, err := h.svc.CreateCertificate(r.Context(), certificate.CreateCertificateInput{
		Title:             req.Title,
		Provider:          req.Provider,
		Credits:           req.Credits,
		CreditTypes:       req.CreditTypes,
		Subject:           req.Subject,
		CompletionDate:    req.CompletionDate,
		ExpirationDate:    req.ExpirationDate,
		CertificateNumber: req.CertificateNumber,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, cert)
}

// Get handles GET /api/certificates/{id}.
func (h *CertificateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	cert, err := h.svc.GetCertificate(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cert)
}

// List handles GET /api/certificates?credit_type=&year=.
func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.CertificateFilter

	if ct := r.URL.Query().Get("credit_type"); ct != "" {
		filter.CreditType = &ct
	}
	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		filter.Year = &year
	}

	certs, err := h.svc.ListCertificates(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if certs == nil {
		certs = []*domain.Certificate{}
	}
	writeJSON(w, http.StatusOK, certs)
}

// Update handles PUT /api/certificates/{id}.
func (h *CertificateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req updateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cert, err := h.svc.UpdateCertificate(r.Context(), certificate.UpdateCertificateInput{
		CertificateID:     id,
		Title:             req.Title,
		Provider:          req.Provider,
		Credits:           req.Credits,
		CreditTypes:       req.CreditTypes,
		Subject:           req.Subject,
		CompletionDate:    req.CompletionDate,
		ExpirationDate:    req.ExpirationDate,
		CertificateNumber: req.CertificateNumber,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cert)
}

// Delete handles DELETE /api/certificates/{id}.
func (h *CertificateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCertificate(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Upload handles POST /api/certificates/upload. Accepts a multipart form with
// a "file" field; the document is stored and queued through extraction.
func (h *CertificateHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	mediaType := header.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = mt
	}

	cert, err := h.svc.UploadCertificate(r.Context(), certificate.UploadCertificateInput{
		Filename:  header.Filename,
		MediaType: mediaType,
		Data:      data,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, cert)
}

// RegistryImport handles POST /api/certificates/registry-import.
func (h *CertificateHandler) RegistryImport(w http.ResponseWriter, r *http.Request) {
	var req registryImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	records := make([]certificate.RegistryRecord, 0, len(req.Records))
	for _, rec := range req.Records {
		records = append(records, certificate.RegistryRecord{
			Title:          rec.Title,
			Provider:       rec.Provider,
			Credits:        rec.Credits,
			CreditType:     rec.CreditType,
			CompletionDate: rec.CompletionDate,
		})
	}

	certs, err := h.svc.RegistryImport(r.Context(), certificate.RegistryImportInput{Records: records})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if certs == nil {
		certs = []*domain.Certificate{}
	}
	writeJSON(w, http.StatusCreated, certs)
}

// BulkImport handles POST /api/certificates/bulk-import.
func (h *CertificateHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	var req bulkImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rows := make([]certificate.BulkImportRow, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, certificate.BulkImportRow{
			Title:          row.Title,
			Provider:       row.Provider,
			Credits:        row.Credits,
			CreditTypes:    row.CreditTypes,
			Subject:        row.Subject,
			CompletionDate: row.CompletionDate,
		})
	}

	result, err := h.svc.BulkImport(r.Context(), certificate.BulkImportInput{Rows: rows})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := bulkImportResponse{Imported: result.Imported, Errors: []bulkImportRowError{}}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, bulkImportRowError{Row: e.Row, Message: e.Message})
	}
	writeJSON(w, http.StatusOK, resp)
}
