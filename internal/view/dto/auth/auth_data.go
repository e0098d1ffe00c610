package auth

import "github.com/ecowaste/site/internal/password"

// FieldErrors maps a form field name to the message shown under it.
type FieldErrors map[string]string

// SignInData is the View Model (DTO) for the sign-in template. Passwords are
// never carried back into a re-rendered form.
type SignInData struct {
	Email  string
	Errors FieldErrors
}

// SignUpData is the View Model for the sign-up template.
type SignUpData struct {
	Name         string
	Email        string
	Errors       FieldErrors
	Requirements []password.Requirement
}

// ForgotPasswordData transfers the (possibly pre-filled) email to the
// forgot password template.
type ForgotPasswordData struct {
	Email string
	Error string
}

// ForgotPasswordSentData is the "Check Your Email" view shown after submission.
type ForgotPasswordSentData struct {
	Email string
}

// ChangePasswordData drives the change password form and its live checklist.
type ChangePasswordData struct {
	Requirements  []password.Requirement
	ShowChecklist bool
	Mismatch      bool
	CanSubmit     bool
	Error         string
}

// NewChangePasswordData evaluates the two fields for rendering.
func NewChangePasswordData(newPassword, confirm string) ChangePasswordData {
	return ChangePasswordData{
		Requirements:  password.Evaluate(newPassword),
		ShowChecklist: newPassword != "",
		Mismatch:      confirm != "" && newPassword != confirm,
		CanSubmit:     password.CanSubmit(newPassword, confirm),
	}
}
