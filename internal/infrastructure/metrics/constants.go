package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "socialdash_http_requests_total"
	MetricNameHTTPRequestDuration  = "socialdash_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "socialdash_http_requests_in_flight"

	MetricNameOAuthFlows        = "socialdash_oauth_flows_total"
	MetricNameOAuthCallbacks    = "socialdash_oauth_callbacks_total"
	MetricNameAccountOperations = "socialdash_account_operations_total"

	MetricNameStoreExpired      = "socialdash_store_expired_total"
	MetricNameStoreReadFailures = "socialdash_store_read_failures_total"
	MetricNameStoreSweepRemoved = "socialdash_store_sweep_removed_total"
)

// Help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextOAuthFlows        = "Total number of OAuth flows initiated per platform"
	HelpTextOAuthCallbacks    = "Total number of simulated OAuth callbacks by outcome"
	HelpTextAccountOperations = "Total number of connected account operations by result"

	HelpTextStoreExpired      = "Total number of entries dropped on read because they expired"
	HelpTextStoreReadFailures = "Total number of store reads that degraded to absent"
	HelpTextStoreSweepRemoved = "Total number of expired entries removed by the sweep job"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelPlatform = "platform"
	LabelOutcome  = "outcome"
	LabelAction   = "action"
	LabelReason   = "reason"
)

// PlatformUnknown is the platform label for ids outside the registry.
const PlatformUnknown = "unknown"

// HTTPLatencyBuckets covers the simulated provider delays, which run up to
// a few seconds.
var HTTPLatencyBuckets = []float64{.005, .01, .05, .1, .25, .5, 1, 1.5, 2, 2.5, 5}
