package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/internal/middleware"
	"github.com/ecowaste/site/internal/pubsub"
	"github.com/ecowaste/site/internal/rendering"
	"github.com/ecowaste/site/internal/wastedata"
	"github.com/ecowaste/site/web/src/templates/components"
)

type fakePublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
}

func (f *fakePublisher) Publish(_ context.Context, msg pubsub.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func (f *fakePublisher) Messages() []pubsub.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pubsub.Message(nil), f.msgs...)
}

func newTestServer(t *testing.T) (*echo.Echo, *fakePublisher) {
	t.Helper()

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	v, err := NewValidator()
	require.NoError(t, err)
	e.Validator = v
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))))

	pub := &fakePublisher{}
	data := wastedata.New()
	authH := NewAuthHandler(pub, 0)
	dashH := NewDashboardHandler(data)
	analysisH := NewAnalysisHandler(data)

	e.GET("/", NewHomeHandler().HomeGet)
	e.GET("/about", AboutGet)
	e.GET("/dashboard", dashH.DashboardGet)
	e.GET("/data-analysis", analysisH.AnalysisGet)
	e.GET("/data-analysis/export", analysisH.ExportGet)
	e.GET("/api/v1/dashboard", dashH.DashboardAPI)
	e.GET("/api/v1/analysis", analysisH.AnalysisAPI)
	e.GET("/auth/signin", authH.SignInGet)
	e.POST("/auth/signin", authH.SignInPost)
	e.GET("/auth/signup", authH.SignUpGet)
	e.POST("/auth/signup", authH.SignUpPost)
	e.GET("/auth/forgot-password", authH.ForgotPasswordGet)
	e.POST("/auth/forgot-password", authH.ForgotPasswordPost)
	e.GET("/auth/change-password", authH.ChangePasswordGet)
	e.POST("/auth/change-password", authH.ChangePasswordPost)
	e.POST("/auth/change-password/requirements", authH.ChangePasswordRequirements)

	return e, pub
}

func get(e *echo.Echo, target string, htmx bool, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func post(e *echo.Echo, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func changeForm(newPassword, confirm string) url.Values {
	return url.Values{"newPassword": {newPassword}, "confirmPassword": {confirm}}
}

func TestChangePasswordPost_Mismatch(t *testing.T) {
	e, pub := newTestServer(t)

	t.Run("strong but different", func(t *testing.T) {
		rec := post(e, "/auth/change-password", changeForm("Xyzzy12!", "Xyzzy12?"), false)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, MismatchTitle)
		assert.Contains(t, body, MismatchDescription)
		assert.Contains(t, body, "toast-destructive")
		assert.NotContains(t, body, "Xyzzy12")
	})

	t.Run("mismatch is reported before strength", func(t *testing.T) {
		rec := post(e, "/auth/change-password", changeForm("abc", "abd"), false)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), MismatchTitle)
		assert.NotContains(t, rec.Body.String(), WeakPasswordMessage)
	})

	t.Run("empty confirmation shows the inline hint", func(t *testing.T) {
		rec := post(e, "/auth/change-password", changeForm("Str0ng!Pass", ""), false)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), MismatchTitle)
		assert.Contains(t, rec.Body.String(), components.MismatchMessage)
	})

	assert.Empty(t, pub.Messages())
}

func TestChangePasswordPost_Weak(t *testing.T) {
	e, pub := newTestServer(t)

	for _, pw := range []string{"abcdefgh", "ABCDEFG1!", "Abcdefgh1", "Ab1!", "Abcdé1!"} {
		t.Run(pw, func(t *testing.T) {
			rec := post(e, "/auth/change-password", changeForm(pw, pw), false)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), WeakPasswordMessage)
			assert.NotContains(t, rec.Body.String(), MismatchTitle)
		})
	}
	assert.Empty(t, pub.Messages())
}

func TestChangePasswordPost_Success(t *testing.T) {
	e, pub := newTestServer(t)

	rec := post(e, "/auth/change-password", changeForm("Abcdef1!", "Abcdef1!"), false)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/signin", rec.Header().Get(echo.HeaderLocation))

	msgs := pub.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.TopicPasswordChanged, msgs[0].Topic)
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), msgs[0].RequestID)

	// The success toast travels in the flash cookie to the sign-in page.
	next := get(e, "/auth/signin", false, rec.Result().Cookies()...)
	assert.Equal(t, http.StatusOK, next.Code)
	assert.Contains(t, next.Body.String(), ChangedTitle)
	assert.Contains(t, next.Body.String(), ChangedDescription)

	// Flashes are shown once.
	again := get(e, "/auth/signin", false, next.Result().Cookies()...)
	assert.NotContains(t, again.Body.String(), ChangedTitle)
}

func TestChangePasswordPost_HTMXRedirect(t *testing.T) {
	e, _ := newTestServer(t)

	rec := post(e, "/auth/change-password", changeForm("Abcdef1!", "Abcdef1!"), true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/auth/signin", rec.Header().Get("HX-Redirect"))
}

func TestChangePasswordRequirements(t *testing.T) {
	e, _ := newTestServer(t)

	t.Run("partial password", func(t *testing.T) {
		rec := post(e, "/auth/change-password/requirements", changeForm("abc", ""), true)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.NotContains(t, body, "<html")
		assert.Contains(t, body, `data-state="met"`)
		assert.Contains(t, body, `data-state="unmet"`)
		assert.Contains(t, body, `hx-swap-oob="true"`)
		assert.Contains(t, body, "disabled")
	})

	t.Run("mismatch hint", func(t *testing.T) {
		rec := post(e, "/auth/change-password/requirements", changeForm("Abcdef1!", "Abcdef1"), true)

		assert.Contains(t, rec.Body.String(), "Passwords do not match")
		assert.Contains(t, rec.Body.String(), "disabled")
	})

	t.Run("ready to submit", func(t *testing.T) {
		rec := post(e, "/auth/change-password/requirements", changeForm("Abcdef1!", "Abcdef1!"), true)

		assert.NotContains(t, rec.Body.String(), `data-state="unmet"`)
		assert.NotContains(t, rec.Body.String(), "disabled")
	})
}

func TestForgotPassword(t *testing.T) {
	t.Run("prefills email", func(t *testing.T) {
		e, _ := newTestServer(t)
		rec := get(e, "/auth/forgot-password?email=user%40example.com", false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `value="user@example.com"`)
	})

	t.Run("invalid email", func(t *testing.T) {
		e, pub := newTestServer(t)
		rec := post(e, "/auth/forgot-password", url.Values{"email": {"not-an-email"}}, true)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please enter a valid email address")
		assert.Empty(t, pub.Messages())
	})

	t.Run("htmx submission", func(t *testing.T) {
		e, pub := newTestServer(t)
		rec := post(e, "/auth/forgot-password", url.Values{"email": {"user@example.com"}}, true)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.NotContains(t, body, "<html")
		assert.Contains(t, body, "Check Your Email")
		assert.Contains(t, body, `<strong class="sent-email">user@example.com</strong>`)
		assert.Contains(t, body, `hx-swap-oob="beforeend:#toasts"`)
		assert.Contains(t, body, ResetSentTitle)

		msgs := pub.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, domain.TopicResetRequested, msgs[0].Topic)
		var ev domain.AuthEvent
		require.NoError(t, json.Unmarshal(msgs[0].Payload, &ev))
		assert.Equal(t, "user@example.com", ev.Email)
		assert.False(t, ev.OccurredAt.IsZero())
	})

	t.Run("plain form submission", func(t *testing.T) {
		e, _ := newTestServer(t)
		rec := post(e, "/auth/forgot-password", url.Values{"email": {"user@example.com"}}, false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<html")
		assert.Contains(t, rec.Body.String(), ResetSentTitle)
		assert.Contains(t, rec.Body.String(), "user@example.com")
	})
}

func TestSignIn(t *testing.T) {
	e, _ := newTestServer(t)

	t.Run("missing fields", func(t *testing.T) {
		rec := post(e, "/auth/signin", url.Values{"email": {"user@example.com"}}, false)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "This field is required")
		assert.Contains(t, rec.Body.String(), `value="user@example.com"`)
	})

	t.Run("valid", func(t *testing.T) {
		rec := post(e, "/auth/signin", url.Values{"email": {"user@example.com"}, "password": {"anything"}}, false)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))

		next := get(e, "/dashboard", false, rec.Result().Cookies()...)
		assert.Contains(t, next.Body.String(), SignedInTitle)
	})
}

func TestSignUp(t *testing.T) {
	t.Run("weak password shows requirements", func(t *testing.T) {
		e, pub := newTestServer(t)
		form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "password": {"short"}, "confirmPassword": {"short"}}
		rec := post(e, "/auth/signup", form, false)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Password does not meet all requirements")
		assert.Contains(t, body, "password-checklist")
		assert.NotContains(t, body, `value="short"`)
		assert.Empty(t, pub.Messages())
	})

	t.Run("confirmation differs", func(t *testing.T) {
		e, _ := newTestServer(t)
		form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "password": {"Abcdef1!"}, "confirmPassword": {"Abcdef1?"}}
		rec := post(e, "/auth/signup", form, false)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Passwords do not match")
	})

	t.Run("valid", func(t *testing.T) {
		e, pub := newTestServer(t)
		form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "password": {"Abcdef1!"}, "confirmPassword": {"Abcdef1!"}}
		rec := post(e, "/auth/signup", form, false)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/signin", rec.Header().Get(echo.HeaderLocation))

		msgs := pub.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, domain.TopicAccountCreated, msgs[0].Topic)
		var ev domain.AuthEvent
		require.NoError(t, json.Unmarshal(msgs[0].Payload, &ev))
		assert.Equal(t, "Ada", ev.Name)
	})
}

func TestPages(t *testing.T) {
	e, _ := newTestServer(t)

	for path, marker := range map[string]string{
		"/":                     "EcoWaste",
		"/about":                "About - EcoWaste",
		"/dashboard":            "Dashboard - EcoWaste",
		"/data-analysis":        "Data Analysis - EcoWaste",
		"/auth/signin":          "Welcome Back",
		"/auth/signup":          "Create Account",
		"/auth/change-password": "Change Password",
		"/auth/forgot-password": "Forgot Password?",
	} {
		t.Run(path, func(t *testing.T) {
			rec := get(e, path, false)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
			assert.Contains(t, rec.Body.String(), marker)
		})
	}
}

func TestAnalysis(t *testing.T) {
	e, _ := newTestServer(t)

	t.Run("htmx gets the results fragment", func(t *testing.T) {
		rec := get(e, "/data-analysis?area=zone-a&type=organic", true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "<html")
		assert.Contains(t, rec.Body.String(), "Zone A")
	})

	t.Run("invalid filter", func(t *testing.T) {
		rec := get(e, "/data-analysis?type=bogus", true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unknown waste type")
	})

	t.Run("export", func(t *testing.T) {
		rec := get(e, "/data-analysis/export?type=organic", false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `attachment; filename="waste-analysis.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
		assert.True(t, strings.HasPrefix(rec.Body.String(), "area,organic\n"))
		assert.Contains(t, rec.Body.String(), "Zone A,450")
	})

	t.Run("export with invalid filter", func(t *testing.T) {
		rec := get(e, "/data-analysis/export?area=zone-z", false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("api", func(t *testing.T) {
		rec := get(e, "/api/v1/analysis?area=zone-b", false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
		assert.Contains(t, rec.Body.String(), "Zone B")
	})

	t.Run("api with invalid filter", func(t *testing.T) {
		rec := get(e, "/api/v1/analysis?from=2024-02-01&to=2024-01-01", false)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_filter", resp.Code)
		assert.NotEmpty(t, resp.Message)
	})
}

func TestDashboardAPI(t *testing.T) {
	e, _ := newTestServer(t)
	rec := get(e, "/api/v1/dashboard", false)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body)
}

func TestSimulateWork(t *testing.T) {
	assert.NoError(t, simulateWork(context.Background(), 0))
	assert.NoError(t, simulateWork(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, simulateWork(ctx, time.Hour), context.Canceled)
}
