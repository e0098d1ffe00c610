package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecowaste/site/internal/config"
	"github.com/ecowaste/site/internal/handlers"
	"github.com/ecowaste/site/internal/pubsub"
	"github.com/ecowaste/site/internal/rendering"
	"github.com/ecowaste/site/internal/wastedata"
)

func newTestServer(t *testing.T, env map[string]string) *Server {
	t.Helper()

	if env == nil {
		env = map[string]string{}
	}
	if _, ok := env["SIMULATED_DELAY"]; !ok {
		env["SIMULATED_DELAY"] = "0s"
	}
	cfg, err := config.FromEnv(func(key string) string { return env[key] })
	require.NoError(t, err)

	bus := pubsub.NewWatermillBridge(nil)
	t.Cleanup(func() { _ = bus.Close() })

	s, err := New(Dependencies{
		Config:    cfg,
		Publisher: bus,
		Dataset:   wastedata.New(),
		Renderer:  rendering.NewUniversalRenderer(),
	})
	require.NoError(t, err)
	s.RegisterRoutes()
	return s
}

func serve(s *Server, method, target string, body url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)
	return rec
}

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	// Capture slog output.
	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{AddSource: true}))
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), rec.Body.String())

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"")
	assert.Contains(t, logOutput, "stack_trace=")
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

func TestHTTPErrorHandler_HTTPError(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e)
	e.GET("/api/v1/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})
	e.GET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/teapot", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.ErrorResponse{Code: "i'm_a_teapot", Message: "short and stout"}, resp)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("page", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/no/such/page", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
		assert.Contains(t, rec.Body.String(), "Oops! Page not found")
		assert.Contains(t, rec.Body.String(), `href="/"`)
	})

	t.Run("api", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/api/v1/nope", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
		assert.Contains(t, rec.Body.String(), `"code":"not_found"`)
	})

	t.Run("missing static file", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/static/css/missing.css", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	for _, path := range []string{"/", "/about", "/dashboard", "/data-analysis", "/auth/signin", "/auth/signup", "/auth/forgot-password", "/auth/change-password", "/health"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(s, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}

	t.Run("trailing slash", func(t *testing.T) {
		rec := serve(s, http.MethodGet, "/about/", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("route table", func(t *testing.T) {
		var paths []string
		for _, r := range s.Routes() {
			paths = append(paths, r.Method+" "+r.Path)
		}
		assert.Contains(t, paths, "POST /auth/change-password/requirements")
		assert.Contains(t, paths, "GET /data-analysis/export")
		assert.Contains(t, paths, "GET /api/v1/analysis")
	})
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)
	rec := serve(s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestStaticAssets(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		s := newTestServer(t, nil)
		rec := serve(s, http.MethodGet, "/static/css/app.css", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
	})

	t.Run("from disk", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "app.js"), []byte("// local"), 0o644))

		s := newTestServer(t, map[string]string{"STATIC_DIR": dir})
		rec := serve(s, http.MethodGet, "/static/js/app.js", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "// local", rec.Body.String())
	})

	t.Run("missing dir", func(t *testing.T) {
		_, err := newStaticFS(filepath.Join(t.TempDir(), "nope"))
		assert.ErrorContains(t, err, "does not exist")
	})
}

func TestAuthRateLimit(t *testing.T) {
	s := newTestServer(t, nil)
	form := url.Values{"email": {"user@example.com"}, "password": {"secret"}}

	for i := 0; i < 10; i++ {
		rec := serve(s, http.MethodPost, "/auth/signin", form)
		require.Equal(t, http.StatusSeeOther, rec.Code, "request %d", i+1)
	}
	rec := serve(s, http.MethodPost, "/auth/signin", form)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Reading pages is never limited.
	assert.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/auth/signin", nil).Code)
}
