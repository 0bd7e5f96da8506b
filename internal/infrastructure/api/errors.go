package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/markethub/storefront-core/internal/core/domain"
)

// Error carries the HTTP status and the server-reported message of a failed
// API call. Validation errors (4xx) are never retried; they surface here
// for user-facing display.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Unwrap maps terminal statuses onto domain sentinels so callers can use
// errors.Is without knowing about HTTP. A 401 reaching this layer means the
// transparent refresh already ran (or was impossible), so it is a terminal
// authentication failure.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrSessionExpired
	case http.StatusForbidden:
		return domain.ErrForbidden
	}
	return nil
}

// IsNotFound reports whether err is a server 404.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == http.StatusNotFound
}

// decodeError drains the response body and builds an *Error from the
// backend's error envelope ({"error": ...} or {"detail": ...}).
func decodeError(resp *http.Response) error {
	var envelope struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(body, &envelope)

	msg := envelope.Error
	if msg == "" {
		msg = envelope.Detail
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}
