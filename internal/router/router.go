// Package router wires handlers and middleware onto an echo instance.
package router

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/eventsphere/internal/config"
	"github.com/iliyamo/eventsphere/internal/handler"
	"github.com/iliyamo/eventsphere/internal/middleware"
)

// Deps is everything the routes need.  Redis may be nil; caching and rate
// limiting are then skipped.
type Deps struct {
	Cfg       config.Config
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
	Redis     *redis.Client
	Log       *slog.Logger

	// Registry receives the HTTP metrics.  Nil means the default registry.
	Registry prometheus.Registerer
	// Gatherer backs /metrics.  Nil means the default gatherer.
	Gatherer prometheus.Gatherer

	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Booking *handler.BookingHandler
	Admin   *handler.AdminHandler
}

// New builds the echo instance with global middleware and every route.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	reg, gat := d.Registry, d.Gatherer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if gat == nil {
		gat = prometheus.DefaultGatherer
	}

	e.Use(
		echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}),
		middleware.AccessLog(d.Log),
		echomw.Recover(),
		middleware.NewMetrics(reg).Middleware(),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: d.Cfg.AllowedOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		}),
	)

	RegisterRoutes(e, gat)
	RegisterAuth(e, d)
	RegisterPublic(e, d)
	RegisterAdmin(e, d)
	return e
}

// RegisterRoutes registers operational endpoints.
func RegisterRoutes(e *echo.Echo, gat prometheus.Gatherer) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gat, promhttp.HandlerOpts{})))
}

// RegisterAuth registers sign-in routes under /api/auth.  The POST routes
// are rate limited; /me requires a session token.
func RegisterAuth(e *echo.Echo, d Deps) {
	limit := middleware.RateLimit(d.RateLimit, d.Redis, d.Log)

	g := e.Group("/api/auth")
	g.POST("/google", d.Auth.Google, limit)
	g.POST("/register", d.Auth.Register, limit)
	g.POST("/login", d.Auth.Login, limit)
	g.GET("/me", d.Auth.Me, middleware.SessionAuth(d.Cfg.JWTSecret))
}
