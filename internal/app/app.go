package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/credtrack/credtrack-backend/internal/adapter/filestore"
	"github.com/credtrack/credtrack-backend/internal/adapter/postgres"
	certificatepg "github.com/credtrack/credtrack-backend/internal/adapter/postgres/certificate"
	credittypepg "github.com/credtrack/credtrack-backend/internal/adapter/postgres/credittype"
	requirementpg "github.com/credtrack/credtrack-backend/internal/adapter/postgres/requirement"
	selfreportpg "github.com/credtrack/credtrack-backend/internal/adapter/postgres/selfreport"
	tokenpg "github.com/credtrack/credtrack-backend/internal/adapter/postgres/token"
	userpg "github.com/credtrack/credtrack-backend/internal/adapter/postgres/user"
	"github.com/credtrack/credtrack-backend/internal/adapter/provider/npi"
	"github.com/credtrack/credtrack-backend/internal/adapter/provider/vision"
	authjwt "github.com/credtrack/credtrack-backend/internal/auth"
	"github.com/credtrack/credtrack-backend/internal/config"
	"github.com/credtrack/credtrack-backend/internal/service/auth"
	"github.com/credtrack/credtrack-backend/internal/service/certificate"
	"github.com/credtrack/credtrack-backend/internal/service/credittype"
	"github.com/credtrack/credtrack-backend/internal/service/dashboard"
	"github.com/credtrack/credtrack-backend/internal/service/extraction"
	"github.com/credtrack/credtrack-backend/internal/service/report"
	"github.com/credtrack/credtrack-backend/internal/service/requirement"
	"github.com/credtrack/credtrack-backend/internal/service/selfreport"
	"github.com/credtrack/credtrack-backend/internal/service/user"
	"github.com/credtrack/credtrack-backend/internal/transport/middleware"
	"github.com/credtrack/credtrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories and services into the HTTP server, and
// blocks until the context is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	documents, err := filestore.New(cfg.Storage.UploadDir)
	if err != nil {
		return fmt.Errorf("init document store: %w", err)
	}

	// Repositories.
	users := userpg.New(pool)
	tokens := tokenpg.New(pool)
	certificates := certificatepg.New(pool)
	selfReports := selfreportpg.New(pool)
	customTypes := credittypepg.New(pool)
	requirements := requirementpg.New(pool)

	// Providers.
	visionProvider := vision.NewProvider(cfg.Extraction, logger)
	npiProvider := npi.NewProvider(cfg.Registry, logger)
	normalizer := extraction.NewNormalizer(cfg.Extraction, logger)
	jwtManager := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	authSvc := auth.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	requirementSvc := requirement.NewService(logger, requirements, certificates, selfReports)
	certificateSvc := certificate.NewService(logger, certificates, visionProvider, normalizer, documents, requirementSvc, postgres.NewTxManager(pool))
	selfReportSvc := selfreport.NewService(logger, selfReports, requirementSvc)
	userSvc := user.NewService(logger, users, profileStats{
		certificates: certificates,
		selfReports:  selfReports,
		requirements: requirements,
	}, npiProvider)
	creditTypeSvc := credittype.NewService(logger, customTypes, users)
	reportSvc := report.NewService(cfg.Reports, logger, certificates, requirements, users)
	dashboardSvc := dashboard.NewService(logger, certificates, requirements)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Logger: logger,
		Config: cfg.Server,
		CORS:   cfg.CORS,

		AuthHandler:        rest.NewAuthHandler(authSvc, logger),
		UserHandler:        rest.NewUserHandler(userSvc, logger),
		CreditTypeHandler:  rest.NewCreditTypeHandler(creditTypeSvc, logger),
		CertificateHandler: rest.NewCertificateHandler(certificateSvc, logger, cfg.Server.MaxUploadBytes),
		SelfReportHandler:  rest.NewSelfReportHandler(selfReportSvc, logger),
		RequirementHandler: rest.NewRequirementHandler(requirementSvc, logger),
		ReportHandler:      rest.NewReportHandler(reportSvc, logger),
		DashboardHandler:   rest.NewDashboardHandler(dashboardSvc, logger),
		HealthHandler:      rest.NewHealthHandler(pool, BuildVersion()),

		TokenValidator: authSvc,
		RateLimiter:    rateLimiter,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// profileStats satisfies the user service's statistics interface by
// delegating to the three pool repositories.
type profileStats struct {
	certificates *certificatepg.Repo
	selfReports  *selfreportpg.Repo
	requirements *requirementpg.Repo
}

func (s profileStats) CertificateStats(ctx context.Context, userID uuid.UUID) (int, float64, error) {
	return s.certificates.CertificateStats(ctx, userID)
}

func (s profileStats) SelfReportedStats(ctx context.Context, userID uuid.UUID) (int, float64, error) {
	return s.selfReports.SelfReportedStats(ctx, userID)
}

func (s profileStats) ActiveRequirementCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.requirements.ActiveRequirementCount(ctx, userID)
}
