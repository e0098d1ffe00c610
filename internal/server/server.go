package server

import (
	"fmt"
	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ecowaste/site/internal/config"
	"github.com/ecowaste/site/internal/handlers"
	appmw "github.com/ecowaste/site/internal/middleware"
	"github.com/ecowaste/site/internal/pubsub"
	"github.com/ecowaste/site/internal/rendering"
	"github.com/ecowaste/site/internal/wastedata"
)

// Dependencies are the services the HTTP layer needs.
type Dependencies struct {
	Config    config.Provider
	Publisher pubsub.Publisher
	Dataset   *wastedata.Dataset
	Renderer  *rendering.UniversalRenderer
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	homeHandler      *handlers.HomeHandler
	dashboardHandler *handlers.DashboardHandler
	analysisHandler  *handlers.AnalysisHandler
	authHandler      *handlers.AuthHandler
}

// New creates a new Server instance with its middleware chain in place.
// Routes are added by RegisterRoutes.
func New(deps Dependencies) (*Server, error) {
	cfg := deps.Config

	validator, err := handlers.NewValidator()
	if err != nil {
		return nil, err
	}
	static, err := newStaticFS(cfg.GetStaticDir())
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer
	e.Validator = validator
	setupErrorHandling(e)

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(appmw.RequestID())
	e.Use(appmw.Logger)
	e.Use(requestLogger())
	e.Use(echomw.Recover())

	// Flash messages live in a cookie-backed session.
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GetAppEnv() == "production",
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", static)

	slog.Info("Server configured", "addr", cfg.GetServerAddr(), "static_dir", staticSource(cfg.GetStaticDir()))

	return &Server{
		E:                e,
		Cfg:              cfg,
		homeHandler:      handlers.NewHomeHandler(),
		dashboardHandler: handlers.NewDashboardHandler(deps.Dataset),
		analysisHandler:  handlers.NewAnalysisHandler(deps.Dataset),
		authHandler:      handlers.NewAuthHandler(deps.Publisher, cfg.GetSimulatedDelay()),
	}, nil
}

// requestLogger writes one access log line per request through the
// request-scoped logger.
func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger := appmw.FromContext(c.Request().Context())
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.Warn("Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Info("Request", attrs...)
			return nil
		},
	})
}

func staticSource(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return fmt.Sprintf("%s (disk)", dir)
}
