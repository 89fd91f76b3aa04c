// Package app wires the course service together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduveda/course-backend/internal/adapter/postgres"
	assessmentrepo "github.com/eduveda/course-backend/internal/adapter/postgres/assessment"
	courserepo "github.com/eduveda/course-backend/internal/adapter/postgres/course"
	resourcerepo "github.com/eduveda/course-backend/internal/adapter/postgres/resource"
	"github.com/eduveda/course-backend/internal/adapter/provider/enrollment"
	"github.com/eduveda/course-backend/internal/adapter/provider/notification"
	"github.com/eduveda/course-backend/internal/config"
	"github.com/eduveda/course-backend/internal/domain"
	"github.com/eduveda/course-backend/internal/reconcile"
	"github.com/eduveda/course-backend/internal/service/assessment"
	"github.com/eduveda/course-backend/internal/service/course"
	"github.com/eduveda/course-backend/internal/service/notify"
	"github.com/eduveda/course-backend/internal/transport/middleware"
	"github.com/eduveda/course-backend/internal/transport/rest"
)

// Serve runs the HTTP server until ctx is cancelled, then drains
// in-flight requests within the shutdown timeout.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting course service",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, pool, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// NewHandler builds the full middleware-wrapped router over pool.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) http.Handler {
	txManager := postgres.NewTxManager(pool)
	resources := resourcerepo.New(pool)
	assessments := assessmentrepo.New(pool)
	courses := courserepo.New(pool)

	resolver := enrollment.NewClient(cfg.Notify.EnrollmentURL, cfg.Notify.RequestTimeout, logger)
	sender := notification.NewClient(notification.Config{
		BaseURL:       cfg.Notify.NotificationURL,
		Timeout:       cfg.Notify.RequestTimeout,
		RatePerSecond: cfg.Notify.RatePerSecond,
		Burst:         cfg.Notify.RateBurst,
	}, logger)
	notifyCfg := notify.Config{
		Concurrency:     cfg.Notify.Concurrency,
		DeliveryTimeout: cfg.Notify.DeliveryTimeout,
	}

	resourceSvc := course.NewService(
		logger,
		reconcile.New[domain.Resource](logger, "resources", resources, txManager, reconcile.RemoveEmptyOwner{Owners: courses}),
		resources,
		courses,
		notify.NewNotifier(logger, resolver, sender, notify.ResourceCatalog, notifyCfg),
		course.Config{AnnounceOwnerRemoval: cfg.Notify.AnnounceOwnerRemoval},
	)
	assessmentSvc := assessment.NewService(
		logger,
		reconcile.New[domain.Assessment](logger, "assessments", assessments, txManager, reconcile.KeepOwner{}),
		assessments,
		courses,
		notify.NewNotifier(logger, resolver, sender, notify.AssessmentCatalog, notifyCfg),
	)

	router := rest.NewRouter(
		rest.NewResourceHandler(resourceSvc, logger),
		rest.NewAssessmentHandler(assessmentSvc, logger),
		rest.NewHealthHandler(pool, Version),
	)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.GatewayIdentity,
	)(router)
}

// Migrate applies every pending schema migration.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	return postgres.Migrate(ctx, cfg.Database.DSN, logger)
}
