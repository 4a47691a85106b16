// Package metrics provides the centralized Prometheus registry for the
// market gateway. All metrics are defined in their respective packages
// (cache, ppt) to maintain modularity and avoid circular dependencies.
//
// This package provides the /metrics handler and the reference for all
// available metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the default Prometheus registry used by the gateway.
// All metrics are automatically registered via promauto in their
// respective packages.
var Registry = prometheus.DefaultRegisterer

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - tcg_cache_hits_total (Counter): Cache hits
//   - tcg_cache_misses_total (Counter): Cache misses
//   - tcg_cache_errors_total{operation} (Counter): Cache operation errors,
//     by operation (get, set, unmarshal)
//
// Vendor Request Metrics (pkg/ppt):
//   - tcg_vendor_requests_total{endpoint, status} (Counter): Vendor requests
//     by endpoint and HTTP status
//   - tcg_vendor_request_duration_seconds{endpoint} (Histogram): Vendor
//     request duration by endpoint
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(tcg_cache_hits_total[5m])) /
//   (sum(rate(tcg_cache_hits_total[5m])) + sum(rate(tcg_cache_misses_total[5m])))
//
//   # Vendor Error Rate
//   sum(rate(tcg_vendor_requests_total{status=~"5.."}[5m]))
//
//   # P95 Vendor Latency
//   histogram_quantile(0.95, rate(tcg_vendor_request_duration_seconds_bucket[5m]))
