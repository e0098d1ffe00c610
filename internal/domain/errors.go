package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for form and filter validation failures.
var (
	// ErrPasswordMismatch indicates the confirmation field differs from the new password.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrWeakPassword indicates at least one password strength rule is unmet.
	ErrWeakPassword = errors.New("password does not meet the strength requirements")

	// ErrInvalidFilter indicates an unknown area code, waste type or date range.
	ErrInvalidFilter = errors.New("invalid analysis filter")

	ErrNotFound = errors.New("requested resource not found")
)
