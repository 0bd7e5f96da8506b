// Package api implements the REST client for the storefront backend: the
// per-resource API ports plus the bearer/refresh transport underneath them.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/markethub/storefront-core/internal/core/ports"
)

// Interface compliance.
var (
	_ ports.AuthAPI    = (*AuthClient)(nil)
	_ ports.CatalogAPI = (*CatalogClient)(nil)
	_ ports.CartAPI    = (*CartClient)(nil)
	_ ports.OrderAPI   = (*OrderClient)(nil)
)

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, e.g. "http://localhost:8000/api".
	BaseURL string
	// Timeout bounds each request end to end, including the 401 replay.
	Timeout time.Duration
	// Storage is the durable session record the transport reads tokens from.
	Storage ports.SessionStorage
	Logger  zerolog.Logger
}

// Client talks to the storefront REST API. It implements every API port
// (AuthAPI, CatalogAPI, CartAPI, OrderAPI); construction wires the refresh
// interceptor into the underlying http.Client.
type Client struct {
	baseURL string
	httpc   *http.Client
	storage ports.SessionStorage
	log     zerolog.Logger
}

func New(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	refresher := NewRefresher(base+"/auth/refresh/", opts.Storage, timeout, opts.Logger)
	transport := NewTransport(http.DefaultTransport, opts.Storage, refresher, opts.Logger)

	return &Client{
		baseURL: base,
		httpc:   &http.Client{Transport: transport, Timeout: timeout},
		storage: opts.Storage,
		log:     opts.Logger,
	}
}

// do performs one JSON request. body is marshalled when non-nil; the
// response is decoded into out when out is non-nil and the call succeeded.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: %w", method, path, decodeError(resp))
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}
