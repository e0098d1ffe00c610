package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ecowaste/site/internal/handlers"
	appmw "github.com/ecowaste/site/internal/middleware"
)

// setupErrorHandling installs the HTTP error handler. Unknown paths get the
// 404 page, API routes get JSON, and unhandled errors are logged with a
// stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := appmw.FromContext(c.Request().Context())

		if errors.Is(err, context.Canceled) {
			logger.Info("Request canceled by client", "path", c.Request().URL.Path)
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
			if he.Internal != nil {
				logger.Warn("HTTP error", "code", code, "error", he.Internal)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
		}

		if code == http.StatusNotFound && !isAPIRequest(c) && c.Request().Method == http.MethodGet {
			renderErr := handlers.NotFound(c)
			if renderErr == nil {
				return
			}
			logger.Error("Failed to render not found page", "error", renderErr)
		}

		var writeErr error
		switch {
		case c.Request().Method == http.MethodHead:
			writeErr = c.NoContent(code)
		case isAPIRequest(c):
			writeErr = c.JSON(code, handlers.ErrorResponse{Code: errorCode(code), Message: message})
		default:
			writeErr = c.String(code, message)
		}
		if writeErr != nil {
			logger.Error("Failed to write error response", "error", writeErr)
		}
	}
}

func isAPIRequest(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/api/")
}

// errorCode turns a status into a snake_case code, e.g. "not_found".
func errorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "error"
	}
	return strings.ReplaceAll(strings.ToLower(text), " ", "_")
}
