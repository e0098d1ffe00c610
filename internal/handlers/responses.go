package handlers

import (
	"errors"
	"strings"

	"github.com/ecowaste/site/internal/domain"
)

// ErrorResponse is the standard format for API error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// filterMessage strips the sentinel prefix from a filter validation error.
func filterMessage(err error) string {
	msg := err.Error()
	if errors.Is(err, domain.ErrInvalidFilter) {
		msg = strings.TrimPrefix(msg, domain.ErrInvalidFilter.Error()+": ")
	}
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
