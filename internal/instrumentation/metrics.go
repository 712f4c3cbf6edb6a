package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency and DRY
const (
	attrMethod    = "method"
	attrPath      = "path"
	attrStatus    = "status"
	attrOperation = "operation"
	attrTool      = "tool"
	attrResource  = "resource"
	attrErrorKind = "error_kind"
)

// Metrics provides methods for recording observability metrics.
type Metrics struct {
	// HTTP metrics
	httpRequestsTotal   metric.Int64Counter
	httpRequestDuration metric.Float64Histogram

	// Trello API metrics
	trelloRequestsTotal    metric.Int64Counter
	trelloRequestDuration  metric.Float64Histogram
	trelloInflightRequests metric.Int64UpDownCounter
	trelloRateLimitsTotal  metric.Int64Counter

	// MCP surface metrics
	toolInvocationsTotal   metric.Int64Counter
	toolInvocationDuration metric.Float64Histogram
	resourceReadsTotal     metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	// HTTP Metrics
	m.httpRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_requests_total counter: %w", err)
	}

	m.httpRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_request_duration_seconds histogram: %w", err)
	}

	// Trello API Metrics
	m.trelloRequestsTotal, err = meter.Int64Counter(
		"trello_api_requests_total",
		metric.WithDescription("Total number of Trello API requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trello_api_requests_total counter: %w", err)
	}

	m.trelloRequestDuration, err = meter.Float64Histogram(
		"trello_api_request_duration_seconds",
		metric.WithDescription("Trello API request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trello_api_request_duration_seconds histogram: %w", err)
	}

	m.trelloInflightRequests, err = meter.Int64UpDownCounter(
		"trello_api_inflight_requests",
		metric.WithDescription("Number of in-flight Trello API requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trello_api_inflight_requests gauge: %w", err)
	}

	m.trelloRateLimitsTotal, err = meter.Int64Counter(
		"trello_api_rate_limits_total",
		metric.WithDescription("Total number of rate-limited Trello API responses"),
		metric.WithUnit("{response}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trello_api_rate_limits_total counter: %w", err)
	}

	// MCP Surface Metrics
	m.toolInvocationsTotal, err = meter.Int64Counter(
		"mcp_tool_invocations_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_invocations_total counter: %w", err)
	}

	m.toolInvocationDuration, err = meter.Float64Histogram(
		"mcp_tool_invocation_duration_seconds",
		metric.WithDescription("MCP tool invocation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_invocation_duration_seconds histogram: %w", err)
	}

	m.resourceReadsTotal, err = meter.Int64Counter(
		"mcp_resource_reads_total",
		metric.WithDescription("Total number of MCP resource reads"),
		metric.WithUnit("{read}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_resource_reads_total counter: %w", err)
	}

	return m, nil
}

// RecordHTTPRequest records an HTTP request with method, path, status code, and duration.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	if m.httpRequestsTotal == nil || m.httpRequestDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrMethod, method),
		attribute.String(attrPath, path),
		attribute.String(attrStatus, strconv.Itoa(statusCode)),
	}

	m.httpRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.httpRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordTrelloRequest records a Trello API request with its operation
// name, outcome status, and duration. Operation names are the fixed set
// of client operations, so cardinality stays bounded.
func (m *Metrics) RecordTrelloRequest(ctx context.Context, operation, status string, duration time.Duration) {
	if m.trelloRequestsTotal == nil || m.trelloRequestDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.trelloRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.trelloRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordRateLimit records a rate-limited Trello API response for the
// given operation.
func (m *Metrics) RecordRateLimit(ctx context.Context, operation string) {
	if m.trelloRateLimitsTotal == nil {
		return // Instrumentation not initialized
	}

	m.trelloRateLimitsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrOperation, operation),
	))
}

// RecordToolInvocation records an MCP tool invocation with tool name,
// outcome status, and duration.
func (m *Metrics) RecordToolInvocation(ctx context.Context, tool, status string, duration time.Duration) {
	if m.toolInvocationsTotal == nil || m.toolInvocationDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrTool, tool),
		attribute.String(attrStatus, status),
	}

	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.toolInvocationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordResourceRead records an MCP resource read. resource is the
// resource family ("board", "list", "card"), never the raw URI, to keep
// cardinality bounded.
func (m *Metrics) RecordResourceRead(ctx context.Context, resource, status string) {
	if m.resourceReadsTotal == nil {
		return // Instrumentation not initialized
	}

	m.resourceReadsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrResource, resource),
		attribute.String(attrStatus, status),
	))
}

// IncrementInflightRequests increments the in-flight Trello request counter.
func (m *Metrics) IncrementInflightRequests(ctx context.Context) {
	if m.trelloInflightRequests == nil {
		return // Instrumentation not initialized
	}

	m.trelloInflightRequests.Add(ctx, 1)
}

// DecrementInflightRequests decrements the in-flight Trello request counter.
func (m *Metrics) DecrementInflightRequests(ctx context.Context) {
	if m.trelloInflightRequests == nil {
		return // Instrumentation not initialized
	}

	m.trelloInflightRequests.Add(ctx, -1)
}
