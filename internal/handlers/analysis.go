package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/internal/middleware"
	"github.com/ecowaste/site/internal/view"
	"github.com/ecowaste/site/internal/wastedata"
	"github.com/ecowaste/site/web/src/templates/layouts"
	"github.com/ecowaste/site/web/src/templates/pages"
)

// ExportFilename is the attachment name of the CSV export.
const ExportFilename = "waste-analysis.csv"

// AnalysisHandler serves the data-analysis page, its CSV export and its API.
type AnalysisHandler struct {
	data *wastedata.Dataset
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(data *wastedata.Dataset) *AnalysisHandler {
	return &AnalysisHandler{data: data}
}

// analyze binds the filter from the query string and runs it. A bind
// failure is reported as an invalid filter.
func (h *AnalysisHandler) analyze(c echo.Context) (wastedata.Filter, domain.Analysis, error) {
	var f wastedata.Filter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &f); err != nil {
		return f, domain.Analysis{}, fmt.Errorf("%w: %v", domain.ErrInvalidFilter, err)
	}
	a, err := h.data.Analysis(f)
	return f, a, err
}

// AnalysisGet renders the page. htmx requests receive only the results
// fragment. Invalid filters answer 400 with the message in place of the
// results.
func (h *AnalysisHandler) AnalysisGet(c echo.Context) error {
	f, a, err := h.analyze(c)
	data := pages.AnalysisData{Filter: f, Areas: h.data.Areas(), Analysis: a}
	status := http.StatusOK
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidFilter) {
			return err
		}
		middleware.FromContext(c.Request().Context()).Info("Rejected analysis filter", "error", err)
		data.Error = filterMessage(err)
		status = http.StatusBadRequest
	}

	if view.IsHTMX(c) {
		return c.Render(status, "", pages.AnalysisResults(data))
	}
	flashes := view.GetFlashData(c)
	return c.Render(status, "", layouts.Base("Data Analysis", "/data-analysis", flashes, pages.DataAnalysis(data)))
}

// ExportGet streams the filtered area table as a CSV attachment.
func (h *AnalysisHandler) ExportGet(c echo.Context) error {
	_, a, err := h.analyze(c)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFilter) {
			return echo.NewHTTPError(http.StatusBadRequest, filterMessage(err))
		}
		return err
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+ExportFilename+`"`)
	c.Response().WriteHeader(http.StatusOK)
	return wastedata.WriteCSV(c.Response(), a)
}

// AnalysisAPI returns the filtered analysis as JSON.
func (h *AnalysisHandler) AnalysisAPI(c echo.Context) error {
	_, a, err := h.analyze(c)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFilter) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid_filter", Message: filterMessage(err)})
		}
		return err
	}
	return c.JSON(http.StatusOK, a)
}
