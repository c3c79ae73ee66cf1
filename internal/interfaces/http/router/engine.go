package router

import (
	"net/http"

	"github.com/clinicfinder/backend/internal/infrastructure/logger"
	"github.com/clinicfinder/backend/internal/interfaces/http/handler"
	"github.com/clinicfinder/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// PrometheusMetrics is the scrape side of the business metrics
type PrometheusMetrics interface {
	Middleware() gin.HandlerFunc
	Handler() http.Handler
}

// Config selects the middleware stack of the engine
type Config struct {
	Logger         *zap.Logger
	TrustedProxies []string
	CORS           middleware.CORSConfig
	Security       middleware.SecurityConfig
	MaxBodySize    int64
	// RateLimiter guards the write endpoints when set
	RateLimiter *middleware.RateLimiter
	Tracing     middleware.TracingConfig
	// Meter receives OTLP HTTP metrics when set
	Meter     metric.Meter
	Profiling bool
	// Metrics serves /metrics when set
	Metrics PrometheusMetrics
	Swagger middleware.SwaggerConfig
}

// Handlers are the API handlers mounted by NewEngine
type Handlers struct {
	Search  *handler.SearchHandler
	Enquiry *handler.EnquiryHandler
	Seed    *handler.SeedHandler
	Health  *handler.HealthHandler
}

// NewEngine builds the gin engine with the middleware stack and all routes.
// A known path requested with another method answers 405 with an empty body.
func NewEngine(cfg Config, h Handlers) (*gin.Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusMethodNotAllowed)
	})
	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	// order: request id, tracing, recovery, logging, metrics, headers, limits
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Tracing(cfg.Tracing)...)
	engine.Use(logger.Recovery(log))
	engine.Use(logger.RequestLogger(log))
	if cfg.Meter != nil {
		engine.Use(middleware.HTTPMetrics(cfg.Meter))
	}
	if cfg.Metrics != nil {
		engine.Use(cfg.Metrics.Middleware())
	}
	if cfg.Profiling {
		engine.Use(middleware.Profiling(middleware.DefaultProfilingConfig()))
	}
	engine.Use(middleware.SecureWithConfig(cfg.Security))
	engine.Use(middleware.CORSWithConfig(cfg.CORS))
	engine.Use(middleware.BodyLimit(cfg.MaxBodySize))

	if h.Health != nil {
		engine.GET("/health", h.Health.Health)
	}
	if cfg.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	limited := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		if cfg.RateLimiter == nil {
			return []gin.HandlerFunc{fn}
		}
		return []gin.HandlerFunc{middleware.RateLimit(cfg.RateLimiter), fn}
	}

	r := NewRouter(engine)

	if h.Search != nil {
		r.Register(NewDomainGroup("search", "/search").
			GET("", h.Search.Search))
	}
	if h.Enquiry != nil {
		r.Register(NewDomainGroup("enquiries", "/enquiries").
			GET("", h.Enquiry.List).
			POST("", limited(h.Enquiry.Create)...))
	}
	if h.Seed != nil {
		r.Register(NewDomainGroup("seed", "/seed").
			POST("", limited(h.Seed.Seed)...))
	}
	r.Setup()

	log.Debug("routes registered", zap.Int("count", len(engine.Routes())))
	return engine, nil
}
