package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ecowaste/site/internal/password"
	"github.com/ecowaste/site/internal/view/dto/auth"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a CustomValidator that knows the password_strength
// tag and reports fields by their form name.
func NewValidator() (*CustomValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	if err := password.RegisterValidation(v); err != nil {
		return nil, fmt.Errorf("failed to register %s validation: %w", password.Tag, err)
	}
	return &CustomValidator{validator: v}, nil
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// SignInRequest defines the DTO for the sign-in form.
type SignInRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// SignUpRequest defines the DTO for the sign-up form.
type SignUpRequest struct {
	Name            string `form:"name" validate:"required,max=100"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,password_strength"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// ForgotPasswordRequest defines the DTO for the reset request form.
type ForgotPasswordRequest struct {
	Email string `form:"email" validate:"required,email"`
}

// ChangePasswordRequest defines the DTO for the change password form and
// its live requirements check.
type ChangePasswordRequest struct {
	NewPassword     string `form:"newPassword"`
	ConfirmPassword string `form:"confirmPassword"`
}

// fieldErrors turns validation errors into one message per form field.
func fieldErrors(err error) auth.FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return auth.FieldErrors{"form": "Please check the form and try again."}
	}
	out := auth.FieldErrors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = validationMessage(fe)
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Please enter a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "eqfield":
		return "Passwords do not match"
	case password.Tag:
		return "Password does not meet all requirements"
	}
	return "Invalid value"
}
