package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ecowaste/site/internal/middleware"
	"github.com/ecowaste/site/internal/view"
	"github.com/ecowaste/site/web/src/templates/layouts"
	"github.com/ecowaste/site/web/src/templates/pages"
)

// NotFound renders the 404 page for any unknown path. API paths are left
// to the error handler so they answer with JSON.
func NotFound(c echo.Context) error {
	path := c.Request().URL.Path
	if strings.HasPrefix(path, "/api/") {
		return echo.ErrNotFound
	}
	middleware.FromContext(c.Request().Context()).Warn("User attempted to access non-existent route", "path", path)
	if view.IsHTMX(c) {
		return c.Render(http.StatusNotFound, "", pages.NotFound(path))
	}
	return c.Render(http.StatusNotFound, "", layouts.Base("Page Not Found", "", view.GetFlashData(c), pages.NotFound(path)))
}
