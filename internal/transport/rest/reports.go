package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/credtrack/credtrack-backend/internal/service/report"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	Summary(ctx context.Context, year *int) (*report.Summary, error)
	YearOverYear(ctx context.Context, startYear, endYear *int) (*report.YearOverYear, error)
	ExportExcel(ctx context.Context, year *int) (*report.Export, error)
	ExportHTML(ctx context.Context, year *int) (*report.Export, error)
}

// ReportHandler serves report REST endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "reports")}
}

// Summary handles GET /api/reports/summary?year=.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	year, ok := intQuery(w, r, "year")
	if !ok {
		return
	}

	summary, err := h.svc.Summary(r.Context(), year)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// YearOverYear handles GET /api/reports/year-over-year?start_year=&end_year=.
func (h *ReportHandler) YearOverYear(w http.ResponseWriter, r *http.Request) {
	startYear, ok := intQuery(w, r, "start_year")
	if !ok {
		return
	}
	endYear, ok := intQuery(w, r, "end_year")
	if !ok {
		return
	}

	yoy, err := h.svc.YearOverYear(r.Context(), startYear, endYear)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, yoy)
}

// ExportExcel handles GET /api/reports/export/excel?year=.
func (h *ReportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.svc.ExportExcel)
}

// ExportHTML handles GET /api/reports/export/html?year=.
func (h *ReportHandler) ExportHTML(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.svc.ExportHTML)
}

func (h *ReportHandler) export(w http.ResponseWriter, r *http.Request, fn func(context.Context, *int) (*report.Export, error)) {
	year, ok := intQuery(w, r, "year")
	if !ok {
		return
	}

	export, err := fn(r.Context(), year)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Data) //nolint:errcheck
}

// intQuery parses an optional integer query parameter. Writes 400 and
// returns false on a malformed value; an absent parameter yields nil.
func intQuery(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return nil, false
	}
	return &v, true
}
