package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecowaste/site/internal/view"
	"github.com/ecowaste/site/internal/wastedata"
	"github.com/ecowaste/site/web/src/templates/layouts"
	"github.com/ecowaste/site/web/src/templates/pages"
)

// DashboardHandler handles requests for the dashboard.
type DashboardHandler struct {
	data *wastedata.Dataset
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(data *wastedata.Dataset) *DashboardHandler {
	return &DashboardHandler{data: data}
}

// DashboardGet shows the dashboard page.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	flashes := view.GetFlashData(c)
	page := pages.Dashboard(h.data.Dashboard())
	return c.Render(http.StatusOK, "", layouts.Base("Dashboard", "/dashboard", flashes, page))
}

// DashboardAPI returns the dashboard figures as JSON.
func (h *DashboardHandler) DashboardAPI(c echo.Context) error {
	return c.JSON(http.StatusOK, h.data.Dashboard())
}
