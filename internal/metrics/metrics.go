// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPCRequests counts finished RPCs by procedure and Connect code ("ok" on success).
	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordena",
		Name:      "rpc_requests_total",
		Help:      "Finished RPCs by procedure and result code.",
	}, []string{"procedure", "code"})

	// RPCDuration observes RPC latency by procedure.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ordena",
		Name:      "rpc_duration_seconds",
		Help:      "RPC latency by procedure.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure"})

	// LowStockAlerts counts alerts by outcome: sent, suppressed or failed.
	LowStockAlerts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordena",
		Name:      "low_stock_alerts_total",
		Help:      "Low-stock alerts by outcome.",
	}, []string{"outcome"})

	// GeocodeLookups counts geocoder calls by result: found, not_found or error.
	GeocodeLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordena",
		Name:      "geocode_lookups_total",
		Help:      "Forward geocoding lookups by result.",
	}, []string{"result"})
)
