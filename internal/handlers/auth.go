package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/internal/middleware"
	"github.com/ecowaste/site/internal/notify"
	"github.com/ecowaste/site/internal/password"
	"github.com/ecowaste/site/internal/pubsub"
	"github.com/ecowaste/site/internal/view"
	"github.com/ecowaste/site/internal/view/dto/auth"
	"github.com/ecowaste/site/web/src/templates/components"
	"github.com/ecowaste/site/web/src/templates/layouts"
	"github.com/ecowaste/site/web/src/templates/pages"
)

// Toast texts shown by the auth flows.
const (
	SignedInTitle        = "Welcome back!"
	SignedInDescription  = "You have successfully signed in."
	SignedUpTitle        = "Account created!"
	SignedUpDescription  = "Your account is ready. Please sign in."
	ResetSentTitle       = "Reset link sent!"
	ResetSentDescription = "Check your email for password reset instructions."
	MismatchTitle        = "Password mismatch"
	MismatchDescription  = "Please ensure both passwords match."
	WeakPasswordMessage  = "Password does not meet all requirements"
	ChangedTitle         = "Password changed successfully!"
	ChangedDescription   = "Your password has been updated. Please sign in with your new password."
)

// AuthHandler serves the sign in, sign up, forgot password and change
// password flows. There is no account store: every accepted submission waits
// for the configured delay, publishes an auth event and moves on.
type AuthHandler struct {
	publisher pubsub.Publisher
	delay     time.Duration
	now       func() time.Time
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(publisher pubsub.Publisher, delay time.Duration) *AuthHandler {
	return &AuthHandler{publisher: publisher, delay: delay, now: time.Now}
}

func (h *AuthHandler) render(c echo.Context, status int, title string, flashes view.FlashData, content cmp.Node) error {
	return c.Render(status, "", layouts.Auth(title, flashes, content))
}

// publish emits an auth event. A failed publish is logged and does not fail
// the request: the user-facing flow has already succeeded.
func (h *AuthHandler) publish(c echo.Context, event pubsub.Event[domain.AuthEvent], ev domain.AuthEvent) {
	ctx := c.Request().Context()
	ev.RequestID = middleware.GetRequestID(c)
	ev.OccurredAt = h.now().UTC()
	if err := pubsub.Publish(ctx, h.publisher, event, ev.RequestID, ev); err != nil {
		middleware.FromContext(ctx).Error("Failed to publish auth event", "topic", event.Name(), "error", err)
	}
}

// SignInGet shows the sign-in form.
func (h *AuthHandler) SignInGet(c echo.Context) error {
	return h.render(c, http.StatusOK, "Sign In", view.GetFlashData(c), pages.SignIn(auth.SignInData{}))
}

// SignInPost accepts any well-formed credentials.
func (h *AuthHandler) SignInPost(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		data := auth.SignInData{Email: req.Email, Errors: fieldErrors(err)}
		return h.render(c, http.StatusUnprocessableEntity, "Sign In", view.FlashData{}, pages.SignIn(data))
	}

	if err := simulateWork(c.Request().Context(), h.delay); err != nil {
		return err
	}
	middleware.FromContext(c.Request().Context()).Info("User signed in", "email", req.Email)
	view.SetFlashSuccess(c, view.ToastMessage(SignedInTitle, SignedInDescription))
	return view.Redirect(c, "/dashboard")
}

// SignUpGet shows the account creation form.
func (h *AuthHandler) SignUpGet(c echo.Context) error {
	return h.render(c, http.StatusOK, "Sign Up", view.GetFlashData(c), pages.SignUp(auth.SignUpData{}))
}

// SignUpPost validates the new account and announces it.
func (h *AuthHandler) SignUpPost(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		data := auth.SignUpData{Name: req.Name, Email: req.Email, Errors: fieldErrors(err)}
		if _, weak := data.Errors["password"]; weak && req.Password != "" {
			data.Requirements = password.Evaluate(req.Password)
		}
		return h.render(c, http.StatusUnprocessableEntity, "Sign Up", view.FlashData{}, pages.SignUp(data))
	}

	if err := simulateWork(c.Request().Context(), h.delay); err != nil {
		return err
	}
	h.publish(c, notify.AccountCreated, domain.AuthEvent{Email: req.Email, Name: req.Name})
	view.SetFlashSuccess(c, view.ToastMessage(SignedUpTitle, SignedUpDescription))
	return view.Redirect(c, "/auth/signin")
}

// ForgotPasswordGet shows the reset request form, pre-filled from the email
// query parameter when present.
func (h *AuthHandler) ForgotPasswordGet(c echo.Context) error {
	data := auth.ForgotPasswordData{Email: c.QueryParam("email")}
	return h.render(c, http.StatusOK, "Forgot Password", view.GetFlashData(c), pages.ForgotPassword(data))
}

// ForgotPasswordPost requests a reset link and answers with the submitted
// view. htmx requests receive the card and an out-of-band toast.
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	if err := c.Validate(&req); err != nil {
		data := auth.ForgotPasswordData{Email: req.Email, Error: fieldErrors(err)["email"]}
		if view.IsHTMX(c) {
			return c.Render(http.StatusUnprocessableEntity, "", pages.ForgotPassword(data))
		}
		return h.render(c, http.StatusUnprocessableEntity, "Forgot Password", view.FlashData{}, pages.ForgotPassword(data))
	}

	if err := simulateWork(c.Request().Context(), h.delay); err != nil {
		return err
	}
	h.publish(c, notify.ResetRequested, domain.AuthEvent{Email: req.Email})

	sent := pages.ForgotPasswordSent(auth.ForgotPasswordSentData{Email: req.Email})
	if view.IsHTMX(c) {
		return c.Render(http.StatusOK, "", cmp.Group{sent, components.AppendToast(ResetSentTitle, ResetSentDescription, false)})
	}
	flashes := view.FlashData{Success: []string{view.ToastMessage(ResetSentTitle, ResetSentDescription)}}
	return h.render(c, http.StatusOK, "Forgot Password", flashes, sent)
}

// ChangePasswordGet shows the change password form.
func (h *AuthHandler) ChangePasswordGet(c echo.Context) error {
	data := auth.NewChangePasswordData("", "")
	return h.render(c, http.StatusOK, "Change Password", view.GetFlashData(c), pages.ChangePassword(data))
}

// ChangePasswordRequirements re-evaluates the form as the user types.
func (h *AuthHandler) ChangePasswordRequirements(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}
	data := auth.NewChangePasswordData(req.NewPassword, req.ConfirmPassword)
	return c.Render(http.StatusOK, "", pages.ChangePasswordFeedback(data))
}

// ChangePasswordPost checks the confirmation first, then the strength rules.
// Nothing is published and no delay is spent on a rejected submission.
func (h *AuthHandler) ChangePasswordPost(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission")
	}

	data := auth.NewChangePasswordData(req.NewPassword, req.ConfirmPassword)
	switch err := password.CheckChange(req.NewPassword, req.ConfirmPassword); {
	case errors.Is(err, domain.ErrPasswordMismatch):
		data.Mismatch = true
		flashes := view.FlashData{Error: []string{view.ToastMessage(MismatchTitle, MismatchDescription)}}
		return h.render(c, http.StatusUnprocessableEntity, "Change Password", flashes, pages.ChangePassword(data))
	case errors.Is(err, domain.ErrWeakPassword):
		data.Error = WeakPasswordMessage
		return h.render(c, http.StatusUnprocessableEntity, "Change Password", view.FlashData{}, pages.ChangePassword(data))
	case err != nil:
		return err
	}

	if err := simulateWork(c.Request().Context(), h.delay); err != nil {
		return err
	}
	h.publish(c, notify.PasswordChanged, domain.AuthEvent{})
	view.SetFlashSuccess(c, view.ToastMessage(ChangedTitle, ChangedDescription))
	return view.Redirect(c, "/auth/signin")
}
