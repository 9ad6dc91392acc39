package upstream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies a normalized upstream failure.
type ErrorKind string

const (
	ErrTransport  ErrorKind = "transport"
	ErrValidation ErrorKind = "validation"
	ErrWidget     ErrorKind = "widget"
	ErrUnknown    ErrorKind = "unknown"
)

// APIError is the single error shape produced for every non-2xx upstream
// response. Error() returns the upstream message verbatim so callers can
// surface it unchanged.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusPaymentRequired:
		return ErrWidget
	case status >= 400 && status < 500:
		return ErrValidation
	case status >= 500:
		return ErrTransport
	default:
		return ErrUnknown
	}
}

// normalizeError converts a non-2xx response body into an APIError. When the
// content type indicates JSON the body's "error" field wins; otherwise the
// raw text is used; an empty body falls back to "HTTP <status>".
func normalizeError(status int, contentType string, body []byte) *APIError {
	msg := ""
	if strings.Contains(contentType, "application/json") {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &APIError{Kind: kindForStatus(status), Status: status, Message: msg}
}
