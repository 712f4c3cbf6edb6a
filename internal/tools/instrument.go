package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-trello/internal/instrumentation"
	"github.com/giantswarm/mcp-trello/internal/server"
)

// WrapWithInstrumentation wraps a tool handler with tracing and metrics.
// The wrapper automatically captures:
//   - A server-side span for the tool invocation
//   - Invocation count and duration metrics
//   - Success/error status from the handler result
//
// MCP tool errors are reported in the result rather than as Go errors,
// so both are inspected when determining the outcome.
func WrapWithInstrumentation(
	toolName string,
	handler ToolHandler,
	sc *server.ServerContext,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, span := instrumentation.StartToolSpan(ctx, toolName)
		defer span.End()

		start := time.Now()
		sc.Metrics().IncrementToolCalls()

		result, err := handler(ctx, request, sc)

		status := instrumentation.StatusSuccess
		switch {
		case err != nil:
			status = instrumentation.StatusError
			sc.Metrics().IncrementToolErrors()
			instrumentation.SetSpanError(span, err)
		case result != nil && result.IsError:
			status = instrumentation.StatusError
			sc.Metrics().IncrementToolErrors()
			instrumentation.AddSpanEvent(span, "tool_error")
		default:
			instrumentation.SetSpanSuccess(span)
		}

		if provider := sc.InstrumentationProvider(); provider != nil {
			provider.Metrics().RecordToolInvocation(ctx, toolName, status, time.Since(start))
		}

		return result, err
	}
}
