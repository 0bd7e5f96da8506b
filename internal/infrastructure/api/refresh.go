package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/markethub/storefront-core/internal/core/domain"
	"github.com/markethub/storefront-core/internal/core/ports"
	"github.com/markethub/storefront-core/internal/metrics"
)

// Refresher exchanges the stored refresh token for a new access token.
// Concurrent callers are collapsed into a single in-flight refresh call;
// every waiter receives the same token or the same error. This is the one
// piece of real concurrency control in the client.
type Refresher struct {
	endpoint string
	httpc    *http.Client
	storage  ports.SessionStorage
	group    singleflight.Group
	log      zerolog.Logger
}

// NewRefresher builds a Refresher posting to the given absolute endpoint.
// The refresh call goes out on a bare HTTP client so it can never recurse
// into the auth transport.
func NewRefresher(endpoint string, storage ports.SessionStorage, timeout time.Duration, log zerolog.Logger) *Refresher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Refresher{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: timeout},
		storage:  storage,
		log:      log,
	}
}

// Refresh returns a fresh access token, already persisted to storage.
// On failure both stored tokens are cleared, forcing a re-login.
func (r *Refresher) Refresh(ctx context.Context) (string, error) {
	v, err, _ := r.group.Do("token-refresh", func() (any, error) {
		// The call is shared by every coalesced waiter, so it must not die
		// with the one caller that happened to start it. The client timeout
		// still bounds it.
		return r.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (r *Refresher) refresh(ctx context.Context) (string, error) {
	refresh := r.storage.RefreshToken()
	if refresh == "" {
		return "", domain.ErrNoSession
	}

	payload, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpc.Do(req)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		r.invalidate()
		return "", fmt.Errorf("refresh token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		r.invalidate()
		return "", fmt.Errorf("refresh token rejected: %w", domain.ErrSessionExpired)
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Access == "" {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		r.invalidate()
		return "", fmt.Errorf("refresh token: malformed response: %w", domain.ErrSessionExpired)
	}

	if err := r.storage.SetAccessToken(out.Access); err != nil {
		r.log.Warn().Err(err).Msg("refresh: persisting new access token failed")
	}
	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()
	r.log.Debug().Msg("access token refreshed")
	return out.Access, nil
}

// invalidate clears both tokens; the next authenticated call will fail fast
// with ErrNoSession until the user logs in again.
func (r *Refresher) invalidate() {
	if err := r.storage.ClearTokens(); err != nil {
		r.log.Warn().Err(err).Msg("refresh: clearing tokens failed")
	}
}
