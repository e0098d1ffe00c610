package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecowaste/site/internal/view"
	"github.com/ecowaste/site/web/src/templates/layouts"
	"github.com/ecowaste/site/web/src/templates/pages"
)

// AboutGet is a handler function that renders the about page.
func AboutGet(c echo.Context) error {
	flashes := view.GetFlashData(c)
	return c.Render(http.StatusOK, "", layouts.Base("About", "/about", flashes, pages.AboutContent()))
}
