package instrumentation

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TestAllMetricsExposedViaPrometheus is an integration test that verifies
// ALL metrics defined in metrics.go are properly recorded and exposed via
// the Prometheus /metrics endpoint.
//
// This test is critical for catching issues where:
// 1. A metric is defined but never recorded
// 2. Middleware is not wired up correctly
// 3. The metric registration failed silently
func TestAllMetricsExposedViaPrometheus(t *testing.T) {
	// Note: The OTel prometheus exporter registers to the global Prometheus registry
	// so we use promhttp.Handler() which exposes that global registry.
	// This matches how the actual application exposes metrics.

	config := Config{
		ServiceName:     "test-metrics-integration",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	}

	ctx := context.Background()
	provider, err := NewProvider(ctx, config)
	if err != nil {
		t.Fatalf("Failed to create instrumentation provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("Metrics should not be nil")
	}

	// Record ALL metrics at least once to ensure they are exposed
	recordAllMetrics(ctx, metrics)

	// Create a test server to scrape metrics
	server := httptest.NewServer(promhttp.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("Failed to fetch metrics: %v", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Failed to close response body: %v", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read metrics body: %v", err)
	}
	metricsOutput := string(body)

	// Define all expected metrics
	// NOTE: These MUST match the metric names in metrics.go
	expectedMetrics := []struct {
		name        string
		description string
		isHistogram bool
	}{
		// HTTP metrics
		{"http_requests_total", "Total number of HTTP requests", false},
		{"http_request_duration_seconds", "HTTP request duration", true},

		// Trello API metrics
		{"trello_api_requests_total", "Total Trello API requests", false},
		{"trello_api_request_duration_seconds", "Trello API request duration", true},
		{"trello_api_inflight_requests", "In-flight Trello API requests", false},
		{"trello_api_rate_limits_total", "Rate-limited Trello responses", false},

		// MCP surface metrics
		{"mcp_tool_invocations_total", "Total tool invocations", false},
		{"mcp_tool_invocation_duration_seconds", "Tool invocation duration", true},
		{"mcp_resource_reads_total", "Total resource reads", false},
	}

	// Check each metric
	var missing []string
	for _, m := range expectedMetrics {
		found := false

		// For histograms, Prometheus exposes _bucket, _sum, _count suffixes
		if m.isHistogram {
			suffixes := []string{"_bucket", "_sum", "_count"}
			for _, suffix := range suffixes {
				pattern := m.name + suffix
				if containsMetric(metricsOutput, pattern) {
					found = true
					break
				}
			}
		} else {
			found = containsMetric(metricsOutput, m.name)
		}

		if found {
			t.Logf("PASS: Found metric %s (%s)", m.name, m.description)
		} else {
			missing = append(missing, m.name)
			t.Errorf("FAIL: Missing metric %s (%s)", m.name, m.description)
		}
	}

	if len(missing) > 0 {
		t.Logf("\n\nMissing metrics: %v", missing)
		t.Log("\nThis likely means:")
		t.Log("  1. The metric is defined but Record*() was never called")
		t.Log("  2. The metric registration failed silently")
		t.Log("  3. The OTel prometheus exporter is not properly configured")
		t.Log("\nCheck internal/instrumentation/metrics.go and ensure all")
		t.Log("metrics are properly registered in NewMetrics()")

		// For debugging, print a sample of the metrics output
		t.Log("\n\nSample of metrics output (first 2000 chars):")
		if len(metricsOutput) > 2000 {
			t.Log(metricsOutput[:2000])
		} else {
			t.Log(metricsOutput)
		}
	}

	// Also verify that metrics without explicit registry work
	if !strings.Contains(metricsOutput, "http_requests_total") {
		t.Error("http_requests_total not found in global prometheus registry")
	}
}

// recordAllMetrics calls every Record* function to ensure all metrics
// are recorded at least once.
func recordAllMetrics(ctx context.Context, m *Metrics) {
	// HTTP metrics
	m.RecordHTTPRequest(ctx, "GET", "/healthz", 200, 50*time.Millisecond)
	m.RecordHTTPRequest(ctx, "POST", "/mcp", 200, 100*time.Millisecond)
	m.RecordHTTPRequest(ctx, "POST", "/mcp", 500, 200*time.Millisecond)

	// Trello API metrics
	m.RecordTrelloRequest(ctx, "list_boards", StatusSuccess, 50*time.Millisecond)
	m.RecordTrelloRequest(ctx, "get_board", StatusSuccess, 100*time.Millisecond)
	m.RecordTrelloRequest(ctx, "create_card", StatusError, 150*time.Millisecond)
	m.RecordRateLimit(ctx, "list_cards")
	m.IncrementInflightRequests(ctx)
	m.DecrementInflightRequests(ctx)

	// MCP surface metrics
	m.RecordToolInvocation(ctx, "list_boards", StatusSuccess, 60*time.Millisecond)
	m.RecordToolInvocation(ctx, "delete_card", StatusError, 30*time.Millisecond)
	m.RecordResourceRead(ctx, "board", StatusSuccess)
	m.RecordResourceRead(ctx, "card", StatusError)
}

// containsMetric checks if the metrics output contains a metric line
// that starts with the given metric name (accounting for labels).
func containsMetric(metricsOutput, metricName string) bool {
	// Prometheus metrics format: metric_name{labels} value
	lines := strings.Split(metricsOutput, "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}

		// Check for TYPE or HELP declarations
		if strings.HasPrefix(line, "# TYPE "+metricName+" ") ||
			strings.HasPrefix(line, "# HELP "+metricName+" ") {
			return true
		}

		// Check for metric data lines
		if strings.HasPrefix(line, metricName+"{") || strings.HasPrefix(line, metricName+" ") {
			return true
		}
	}
	return false
}

// TestMetricLabelsAreRecorded verifies that metric labels are properly
// recorded with the expected values.
func TestMetricLabelsAreRecorded(t *testing.T) {
	config := Config{
		ServiceName:     "test-metrics-labels",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	}

	ctx := context.Background()
	provider, err := NewProvider(ctx, config)
	if err != nil {
		t.Fatalf("Failed to create instrumentation provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	metrics := provider.Metrics()

	// Record some metrics with specific labels
	metrics.RecordHTTPRequest(ctx, "POST", "/mcp", 201, 50*time.Millisecond)
	metrics.RecordTrelloRequest(ctx, "get_board", StatusSuccess, 100*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "move_card", StatusSuccess, 80*time.Millisecond)
	metrics.RecordResourceRead(ctx, "list", StatusSuccess)

	// Fetch metrics
	server := httptest.NewServer(promhttp.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("Failed to fetch metrics: %v", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Failed to close response body: %v", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read metrics body: %v", err)
	}
	metricsOutput := string(body)

	// Verify specific label values
	labelTests := []struct {
		description string
		expected    string
	}{
		{"HTTP method label", `method="POST"`},
		{"HTTP path label", `path="/mcp"`},
		{"HTTP status label", `status="201"`},
		{"Trello operation label", `operation="get_board"`},
		{"Trello status label", `status="success"`},
		{"Tool name label", `tool="move_card"`},
		{"Resource family label", `resource="list"`},
	}

	for _, tc := range labelTests {
		if strings.Contains(metricsOutput, tc.expected) {
			t.Logf("PASS: Found label %s (%s)", tc.expected, tc.description)
		} else {
			t.Errorf("FAIL: Missing label %s (%s)", tc.expected, tc.description)
		}
	}
}

// TestMetricsAreThreadSafe runs concurrent metric recordings to verify
// thread safety with real Prometheus export.
func TestMetricsAreThreadSafe(t *testing.T) {
	config := Config{
		ServiceName:     "test-metrics-threadsafe",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	}

	ctx := context.Background()
	provider, err := NewProvider(ctx, config)
	if err != nil {
		t.Fatalf("Failed to create instrumentation provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	metrics := provider.Metrics()

	// Run concurrent recordings
	const goroutines = 50
	done := make(chan struct{}, goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer func() { done <- struct{}{} }()

			for j := 0; j < 10; j++ {
				metrics.RecordHTTPRequest(ctx, "GET", "/test", 200, time.Duration(id)*time.Millisecond)
				metrics.RecordTrelloRequest(ctx, "list_cards", StatusSuccess, 50*time.Millisecond)
				metrics.RecordToolInvocation(ctx, "get_card", StatusSuccess, 20*time.Millisecond)
				metrics.IncrementInflightRequests(ctx)
				metrics.DecrementInflightRequests(ctx)
			}
		}(i)
	}

	// Wait for all goroutines
	for i := 0; i < goroutines; i++ {
		<-done
	}

	// If we got here without panic or deadlock, the test passes
	// Verify we can still fetch metrics
	server := httptest.NewServer(promhttp.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("Failed to fetch metrics after concurrent recording: %v", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("Failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 OK, got %d", resp.StatusCode)
	}
}
