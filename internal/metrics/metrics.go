// Package metrics defines and registers the Prometheus metrics of the
// storefront core. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// RequestsTotal counts outgoing API requests by method and response class.
// Labels:
//   - method: HTTP method of the request
//   - status: numeric HTTP status of the final response, or "error" when
//     the request never produced a response
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of outgoing API requests.",
	},
	[]string{"method", "status"},
)

// RequestDuration measures the end-to-end latency of outgoing API requests,
// including the transparent 401 retry when one happens.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Latency of outgoing API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// TokenRefreshTotal counts token refresh attempts.
// Label:
//   - result: "success" or "failure"
var TokenRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of access-token refresh calls, by result.",
	},
	[]string{"result"},
)

// RetriedRequestsTotal counts requests that were retried once after a 401.
var RetriedRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "retried_requests_total",
		Help:      "Total number of requests replayed after a token refresh.",
	},
)
