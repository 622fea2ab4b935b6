package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/config"
	"github.com/credtrack/credtrack-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Logger *slog.Logger
	Config config.ServerConfig
	CORS   config.CORSConfig

	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	CreditTypeHandler  *CreditTypeHandler
	CertificateHandler *CertificateHandler
	SelfReportHandler  *SelfReportHandler
	RequirementHandler *RequirementHandler
	ReportHandler      *ReportHandler
	DashboardHandler   *DashboardHandler
	HealthHandler      *HealthHandler

	TokenValidator interface {
		ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
	}

	RateLimiter *middleware.RateLimiter
}

// NewRouter assembles the HTTP routing tree with the shared middleware chain.
func NewRouter(deps RouterDeps) http.Handler {
	mux := chi.NewRouter()

	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recovery(deps.Logger))
	mux.Use(middleware.Logger(deps.Logger))
	mux.Use(middleware.CORS(deps.CORS))
	if deps.RateLimiter != nil && deps.Config.RateLimitPerMin > 0 {
		mux.Use(deps.RateLimiter.Limit(deps.Config.RateLimitPerMin))
	}

	mux.Get("/health", deps.HealthHandler.Health)
	mux.Get("/ready", deps.HealthHandler.Ready)
	mux.Get("/live", deps.HealthHandler.Live)

	mux.Post("/api/auth/register", deps.AuthHandler.Register)
	mux.Post("/api/auth/login", deps.AuthHandler.Login)
	mux.Post("/api/auth/refresh", deps.AuthHandler.Refresh)
	mux.Post("/api/auth/logout", deps.AuthHandler.Logout)

	mux.Group(func(pr chi.Router) {
		pr.Use(middleware.Auth(deps.TokenValidator))

		pr.Get("/api/users/profile", deps.UserHandler.GetProfile)
		pr.Put("/api/users/profession", deps.UserHandler.UpdateProfession)
		pr.Post("/api/users/npi/validate", deps.UserHandler.ValidateNPI)
		pr.Delete("/api/users/npi", deps.UserHandler.RemoveNPI)

		pr.Get("/api/cme-types", deps.CreditTypeHandler.Catalog)
		pr.Get("/api/cme-types/all", deps.CreditTypeHandler.FullCatalog)
		pr.Get("/api/cme-types/custom", deps.CreditTypeHandler.ListCustom)
		pr.Post("/api/cme-types/custom", deps.CreditTypeHandler.CreateCustom)
		pr.Delete("/api/cme-types/custom/{id}", deps.CreditTypeHandler.DeleteCustom)

		pr.Get("/api/certificates", deps.CertificateHandler.List)
		pr.Post("/api/certificates", deps.CertificateHandler.Create)
		pr.Post("/api/certificates/upload", deps.CertificateHandler.Upload)
		pr.Post("/api/certificates/registry-import", deps.CertificateHandler.RegistryImport)
		pr.Post("/api/certificates/bulk-import", deps.CertificateHandler.BulkImport)
		pr.Get("/api/certificates/{id}", deps.CertificateHandler.Get)
		pr.Put("/api/certificates/{id}", deps.CertificateHandler.Update)
		pr.Delete("/api/certificates/{id}", deps.CertificateHandler.Delete)

		pr.Get("/api/self-reported", deps.SelfReportHandler.List)
		pr.Post("/api/self-reported", deps.SelfReportHandler.Create)
		pr.Get("/api/self-reported/{id}", deps.SelfReportHandler.Get)
		pr.Put("/api/self-reported/{id}", deps.SelfReportHandler.Update)
		pr.Delete("/api/self-reported/{id}", deps.SelfReportHandler.Delete)

		pr.Get("/api/requirements", deps.RequirementHandler.List)
		pr.Post("/api/requirements", deps.RequirementHandler.Create)
		pr.Get("/api/requirements/{id}", deps.RequirementHandler.Get)
		pr.Put("/api/requirements/{id}", deps.RequirementHandler.Update)
		pr.Delete("/api/requirements/{id}", deps.RequirementHandler.Delete)

		pr.Get("/api/reports/summary", deps.ReportHandler.Summary)
		pr.Get("/api/reports/year-over-year", deps.ReportHandler.YearOverYear)
		pr.Get("/api/reports/export/excel", deps.ReportHandler.ExportExcel)
		pr.Get("/api/reports/export/html", deps.ReportHandler.ExportHTML)

		pr.Get("/api/dashboard", deps.DashboardHandler.Get)
	})

	return mux
}
