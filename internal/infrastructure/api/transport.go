package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/markethub/storefront-core/internal/core/ports"
	"github.com/markethub/storefront-core/internal/metrics"
)

// Transport is the auth interceptor: it attaches the bearer credential to
// every outgoing request, reading the access token fresh from durable
// storage at send time, and transparently retries a request exactly once
// after a 401 by running the single-flight refresh.
//
// This is the only retry policy in the client: no retries for non-401
// failures, no backoff, no budget beyond the single attempt.
type Transport struct {
	base      http.RoundTripper
	storage   ports.SessionStorage
	refresher *Refresher
	log       zerolog.Logger
}

func NewTransport(base http.RoundTripper, storage ports.SessionStorage, refresher *Refresher, log zerolog.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, storage: storage, refresher: refresher, log: log}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.roundTrip(req)
	metrics.RequestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	status := "error"
	if resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	metrics.RequestsTotal.WithLabelValues(req.Method, status).Inc()
	return resp, err
}

func (t *Transport) roundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	if token := t.storage.AccessToken(); token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}
	if t.storage.RefreshToken() == "" {
		return resp, nil
	}

	token, rerr := t.refresher.Refresh(req.Context())
	if rerr != nil {
		// The refresher has already cleared the tokens; the original 401
		// propagates so the caller sees the terminal auth failure.
		t.log.Debug().Err(rerr).Str("path", req.URL.Path).Msg("token refresh failed")
		return resp, nil
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, berr := req.GetBody()
		if berr != nil {
			return resp, nil
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+token)

	resp.Body.Close()
	metrics.RetriedRequestsTotal.Inc()
	t.log.Debug().Str("path", req.URL.Path).Msg("replaying request with refreshed token")

	// The replay's outcome is returned as-is: a second 401 is terminal.
	return t.base.RoundTrip(retry)
}
