package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/clinicfinder/backend/internal/app"
	"github.com/clinicfinder/backend/internal/application/export"
	"github.com/clinicfinder/backend/internal/domain/shared"
	"github.com/clinicfinder/backend/internal/infrastructure/cache"
	"github.com/clinicfinder/backend/internal/infrastructure/config"
	"github.com/clinicfinder/backend/internal/infrastructure/event"
	"github.com/clinicfinder/backend/internal/infrastructure/logger"
	"github.com/clinicfinder/backend/internal/infrastructure/persistence"
	"github.com/clinicfinder/backend/internal/infrastructure/scheduler"
	"github.com/clinicfinder/backend/internal/infrastructure/storage"
	"github.com/clinicfinder/backend/internal/infrastructure/telemetry"
	"github.com/clinicfinder/backend/internal/interfaces/http/handler"
	"github.com/clinicfinder/backend/internal/interfaces/http/middleware"
	"github.com/clinicfinder/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	_ "github.com/clinicfinder/backend/docs"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Clinic Finder API
//	@version		1.0
//	@description	Resolves a cosmetic concern to treatments and clinic packages, and collects enquiries.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath	/api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	bootLog := logger.New(logCfg)

	ctx := context.Background()

	// Telemetry comes first so the final logger can tee into the OTLP log pipeline
	logProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize log exporter", zap.Error(err))
	}
	var log *zap.Logger
	if logProvider.IsEnabled() {
		log = logger.New(logCfg, logProvider.Core(cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level)))
	} else {
		log = bootLog
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting clinic finder",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize meter", zap.Error(err))
	}
	profiler, err := telemetry.NewProfiler(cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}

	gormLog := logger.NewGormLogger(log.Named("gorm"), logger.GormLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	idemStore, err := cache.NewIdempotencyStoreFactory(cfg.Redis,
		cache.WithLogger(log.Named("idempotency")),
		cache.WithInMemoryFallback(!cfg.App.IsProduction()),
	).CreateStore()
	if err != nil {
		log.Fatal("Failed to create idempotency store", zap.Error(err))
	}
	defer func() {
		_ = idemStore.Close()
	}()

	publisher, err := event.NewPublisher(cfg.Messaging, log.Named("events"))
	if err != nil {
		log.Fatal("Failed to create event publisher", zap.Error(err))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Error closing event publisher", zap.Error(err))
		}
	}()

	objects, err := storage.New(&cfg.Storage, log.Named("storage"))
	if err != nil {
		log.Fatal("Failed to create export storage", zap.Error(err))
	}

	metrics := telemetry.NewBusinessMetrics()
	services := app.New(db.DB, app.Options{
		Metrics:     metrics,
		Publisher:   publisher,
		Idempotency: idemStore,
		IdemConfig:  shared.IdempotencyConfig{Enabled: cfg.Idempotency.Enabled, TTL: cfg.Idempotency.TTL},
		Storage:     objects,
		ExportOpts:  exportOptions(cfg),
	})

	if cfg.Export.Enabled {
		exportScheduler, err := scheduler.NewExportScheduler(cfg.Export, services.Export, log.Named("export"))
		if err != nil {
			log.Fatal("Failed to create export scheduler", zap.Error(err))
		}
		if err := exportScheduler.Start(); err != nil {
			log.Fatal("Failed to start export scheduler", zap.Error(err))
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Export.JobTimeout)
			defer cancel()
			if err := exportScheduler.Stop(stopCtx); err != nil {
				log.Error("Error stopping export scheduler", zap.Error(err))
			}
		}()
		log.Info("Export scheduler started",
			zap.String("schedule", cfg.Export.CronSchedule),
			zap.Time("next_run", exportScheduler.NextRun()),
		)
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer limiter.Close()
	}

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	cors.AllowMethods = cfg.HTTP.CORSAllowMethods
	cors.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	security := middleware.DefaultSecurityConfig()
	security.HSTSEnabled = cfg.App.IsProduction()

	engineCfg := router.Config{
		Logger:         log,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		CORS:           cors,
		Security:       security,
		MaxBodySize:    cfg.HTTP.MaxBodySize,
		RateLimiter:    limiter,
		Tracing: middleware.TracingConfig{
			ServiceName:    cfg.Telemetry.ServiceName,
			Enabled:        tracerProvider.IsEnabled(),
			TracerProvider: otel.GetTracerProvider(),
		},
		Profiling: profiler.IsEnabled(),
		Metrics:   metrics,
		Swagger: middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		},
	}
	if meterProvider.IsEnabled() {
		engineCfg.Meter = meterProvider.Meter(cfg.Telemetry.ServiceName)
	}

	engine, err := router.NewEngine(engineCfg, router.Handlers{
		Search:  handler.NewSearchHandler(services.Resolution),
		Enquiry: handler.NewEnquiryHandler(services.Enquiry),
		Seed:    handler.NewSeedHandler(services.Seed),
		Health:  handler.NewHealthHandler(db, version),
	})
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	shutdownTelemetry(shutdownCtx, log, tracerProvider, meterProvider, logProvider)
	if err := profiler.Stop(); err != nil {
		log.Warn("Error stopping profiler", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

func shutdownTelemetry(ctx context.Context, log *zap.Logger, providers ...shutdowner) {
	for _, p := range providers {
		if err := p.Shutdown(ctx); err != nil {
			log.Warn("Error flushing telemetry", zap.Error(err))
		}
	}
}

func exportOptions(cfg *config.Config) []export.Option {
	return []export.Option{
		export.WithKeyPrefix(cfg.Export.KeyPrefix),
		export.WithLinkTTL(cfg.Storage.PresignExpiration),
	}
}
