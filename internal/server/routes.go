package server

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/ecowaste/site/internal/handlers"
	"github.com/ecowaste/site/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(middleware.DefaultRequestsPerMinute)

	// Marketing and analytics pages.
	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.GET("/about", handlers.AboutGet)
	s.E.GET("/dashboard", s.dashboardHandler.DashboardGet)
	s.E.GET("/data-analysis", s.analysisHandler.AnalysisGet)
	s.E.GET("/data-analysis/export", s.analysisHandler.ExportGet)

	auth := s.E.Group("/auth")
	auth.GET("/signin", s.authHandler.SignInGet)
	auth.POST("/signin", s.authHandler.SignInPost, rateLimiter)
	auth.GET("/signup", s.authHandler.SignUpGet)
	auth.POST("/signup", s.authHandler.SignUpPost, rateLimiter)
	auth.GET("/forgot-password", s.authHandler.ForgotPasswordGet)
	auth.POST("/forgot-password", s.authHandler.ForgotPasswordPost, rateLimiter)
	auth.GET("/change-password", s.authHandler.ChangePasswordGet)
	auth.POST("/change-password", s.authHandler.ChangePasswordPost, rateLimiter)
	auth.POST("/change-password/requirements", s.authHandler.ChangePasswordRequirements)

	api := s.E.Group("/api/v1")
	api.GET("/dashboard", s.dashboardHandler.DashboardAPI)
	api.GET("/analysis", s.analysisHandler.AnalysisAPI)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Everything else is a 404 page.
	s.E.RouteNotFound("/*", handlers.NotFound)
}

// Routes lists the registered method and path pairs, sorted by path.
func (s *Server) Routes() []*echo.Route {
	routes := s.E.Routes()
	sortRoutes(routes)
	return routes
}

func sortRoutes(routes []*echo.Route) {
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
}
