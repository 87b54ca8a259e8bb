// Package metrics exposes the Prometheus collectors of the dashboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// OAuth Metrics
var (
	OAuthFlows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOAuthFlows,
			Help: HelpTextOAuthFlows,
		},
		[]string{LabelPlatform},
	)

	OAuthCallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOAuthCallbacks,
			Help: HelpTextOAuthCallbacks,
		},
		[]string{LabelPlatform, LabelOutcome},
	)

	AccountOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAccountOperations,
			Help: HelpTextAccountOperations,
		},
		[]string{LabelAction, LabelOutcome},
	)
)

// Store Metrics
var (
	StoreExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStoreExpired,
			Help: HelpTextStoreExpired,
		},
	)

	StoreReadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreReadFailures,
			Help: HelpTextStoreReadFailures,
		},
		[]string{LabelReason},
	)

	StoreSweepRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStoreSweepRemoved,
			Help: HelpTextStoreSweepRemoved,
		},
	)
)

// Read failure reasons
const (
	ReasonBackend  = "backend"
	ReasonEnvelope = "envelope"
	ReasonPayload  = "payload"
)
