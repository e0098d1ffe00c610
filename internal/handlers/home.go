package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecowaste/site/internal/view"
	"github.com/ecowaste/site/web/src/templates/layouts"
	"github.com/ecowaste/site/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	flashes := view.GetFlashData(c)
	return c.Render(http.StatusOK, "", layouts.Base("Home", "/", flashes, pages.Home()))
}
