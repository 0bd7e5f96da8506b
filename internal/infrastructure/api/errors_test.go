package api

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/markethub/storefront-core/internal/core/domain"
)

func respWithBody(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDecodeError_Envelopes(t *testing.T) {
	err := decodeError(respWithBody(400, `{"error":"quantity must be positive"}`))
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Message != "quantity must be positive" || apiErr.Status != 400 {
		t.Fatalf("unexpected error: %+v", apiErr)
	}

	err = decodeError(respWithBody(404, `{"detail":"Not found."}`))
	if !errors.As(err, &apiErr) || apiErr.Message != "Not found." {
		t.Fatalf("detail envelope not decoded: %v", err)
	}

	err = decodeError(respWithBody(500, `<html>nope</html>`))
	if !errors.As(err, &apiErr) || apiErr.Message != "Internal Server Error" {
		t.Fatalf("expected status text fallback, got %v", err)
	}
}

func TestError_UnwrapsToSentinels(t *testing.T) {
	if err := decodeError(respWithBody(401, `{}`)); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("401 must unwrap to ErrSessionExpired, got %v", err)
	}
	if err := decodeError(respWithBody(403, `{}`)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("403 must unwrap to ErrForbidden, got %v", err)
	}
	if !IsNotFound(decodeError(respWithBody(404, `{}`))) {
		t.Fatalf("expected IsNotFound for 404")
	}
	if IsNotFound(decodeError(respWithBody(400, `{}`))) {
		t.Fatalf("IsNotFound must be false for 400")
	}
}
