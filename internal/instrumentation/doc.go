// Package instrumentation provides OpenTelemetry instrumentation for the
// mcp-trello server.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for HTTP requests, Trello API calls, and MCP activity
//   - Distributed tracing for tool invocations and Trello API calls
//   - Prometheus metrics export via /metrics endpoint
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// Server/HTTP Metrics:
//   - http_requests_total: Counter of HTTP requests by method, path, and status
//   - http_request_duration_seconds: Histogram of HTTP request durations
//
// Trello API Metrics:
//   - trello_api_requests_total: Counter of Trello API requests by operation and status
//   - trello_api_request_duration_seconds: Histogram of Trello API request durations
//   - trello_api_inflight_requests: Gauge of in-flight Trello API requests
//   - trello_api_rate_limits_total: Counter of rate-limited responses by operation
//
// MCP Surface Metrics:
//   - mcp_tool_invocations_total: Counter of tool invocations by tool and status
//   - mcp_tool_invocation_duration_seconds: Histogram of tool invocation durations
//   - mcp_resource_reads_total: Counter of resource reads by resource family and status
//
// All labels come from fixed sets (operation names, tool names, resource
// families, status values), so cardinality stays bounded regardless of
// how many boards or cards a workspace holds. Raw Trello identifiers
// never appear as metric labels; they belong in traces and logs.
//
// # Tracing
//
// Distributed tracing spans are created for:
//   - HTTP request handling
//   - MCP tool invocations
//   - MCP resource reads
//   - Trello API calls
//
// # Configuration
//
// Instrumentation can be configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: false)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: mcp-trello)
//
// # Example Usage
//
//	// Initialize instrumentation
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
//		ServiceName:    "mcp-trello",
//		ServiceVersion: "0.1.0",
//		Enabled:        true,
//	})
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	// Get metrics recorder
//	recorder := provider.Metrics()
//
//	// Record an HTTP request
//	recorder.RecordHTTPRequest(ctx, "POST", "/mcp", 200, time.Since(start))
//
//	// Record a Trello API call
//	recorder.RecordTrelloRequest(ctx, "get_board", "success", time.Since(start))
package instrumentation
