package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-trello/internal/instrumentation"
	"github.com/giantswarm/mcp-trello/internal/logging"
	"github.com/giantswarm/mcp-trello/internal/resources"
	"github.com/giantswarm/mcp-trello/internal/server"
	"github.com/giantswarm/mcp-trello/internal/tools/attachment"
	"github.com/giantswarm/mcp-trello/internal/tools/board"
	"github.com/giantswarm/mcp-trello/internal/tools/card"
	"github.com/giantswarm/mcp-trello/internal/tools/checklist"
	"github.com/giantswarm/mcp-trello/internal/tools/label"
	"github.com/giantswarm/mcp-trello/internal/tools/list"
	"github.com/giantswarm/mcp-trello/internal/trello"
)

// Transport type constants for the MCP server.
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

// envValueTrue is the string value used to enable boolean environment variables.
const envValueTrue = "true"

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var (
		readOnlyMode bool
		debugMode    bool
		apiKey       string
		apiToken     string

		// Transport options
		transport       string
		httpAddr        string
		sseEndpoint     string
		messageEndpoint string
		httpEndpoint    string

		// Metrics options
		enableMetrics bool
		metricsAddr   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP Trello server",
		Long: `Start the MCP Trello server to provide tools for working with
Trello boards via the Model Context Protocol.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - sse: Server-Sent Events over HTTP
  - streamable-http: Streamable HTTP transport

Credentials:
  The Trello API key and token are read from the TRELLO_API_KEY and
  TRELLO_API_TOKEN environment variables unless provided via flags.
  The server fails at startup when either is missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := ServeConfig{
				Transport:       transport,
				HTTPAddr:        httpAddr,
				SSEEndpoint:     sseEndpoint,
				MessageEndpoint: messageEndpoint,
				HTTPEndpoint:    httpEndpoint,
				APIKey:          apiKey,
				APIToken:        apiToken,
				ReadOnlyMode:    readOnlyMode,
				DebugMode:       debugMode,
				Metrics: MetricsServeConfig{
					Enabled: enableMetrics,
					Addr:    metricsAddr,
				},
			}
			return runServe(config)
		},
	}

	// Add flags for configuring the server
	cmd.Flags().BoolVar(&readOnlyMode, "read-only", false, "Enable read-only mode: tools that mutate Trello state are blocked (default: false)")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging (default: false)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Trello API key (can also be set via TRELLO_API_KEY env var)")
	cmd.Flags().StringVar(&apiToken, "api-token", "", "Trello API token (can also be set via TRELLO_API_TOKEN env var)")

	// Transport flags
	cmd.Flags().StringVar(&transport, "transport", transportStdio, "Transport type: stdio, sse, or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for sse and streamable-http transports)")
	cmd.Flags().StringVar(&sseEndpoint, "sse-endpoint", "/sse", "SSE endpoint path (for sse transport)")
	cmd.Flags().StringVar(&messageEndpoint, "message-endpoint", "/message", "Message endpoint path (for sse transport)")
	cmd.Flags().StringVar(&httpEndpoint, "http-endpoint", "/mcp", "HTTP endpoint path (for streamable-http transport)")

	// Metrics flags
	cmd.Flags().BoolVar(&enableMetrics, "enable-metrics", false, "Serve Prometheus metrics on a dedicated listener (can also be set via METRICS_ENABLED env var)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address (can also be set via METRICS_ADDR env var)")

	return cmd
}

// runServe contains the main server logic with support for multiple transports
func runServe(config ServeConfig) error {
	// Resolve credentials: explicit flags win, then the environment.
	// The client itself repeats the env fallback, but resolving here
	// keeps the failure message tied to the serve command.
	loadEnvIfEmpty(&config.APIKey, trello.EnvAPIKey)
	loadEnvIfEmpty(&config.APIToken, trello.EnvAPIToken)

	// Per-request debug logging for the Trello client. The stdio
	// transport keeps the plain stderr logger; the HTTP transports get
	// structured slog output.
	var trelloLogger trello.Logger
	if config.DebugMode {
		if config.Transport == transportStdio {
			trelloLogger = &simpleLogger{}
		} else {
			trelloLogger = logging.DefaultLogger()
		}
	}

	// Create Trello client. Credentials are validated once here so a
	// missing key or token fails at startup.
	trelloClient, err := trello.NewClient(&trello.ClientConfig{
		Key:    config.APIKey,
		Token:  config.APIToken,
		Logger: trelloLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to create Trello client: %w", err)
	}

	// Setup graceful shutdown - listen for both SIGINT and SIGTERM
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize OpenTelemetry instrumentation provider
	instrumentationConfig := instrumentation.DefaultConfig()
	instrumentationConfig.ServiceVersion = rootCmd.Version
	instrumentationProvider, err := instrumentation.NewProvider(shutdownCtx, instrumentationConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if shutdownErr := instrumentationProvider.Shutdown(context.Background()); shutdownErr != nil {
			if config.Transport != transportStdio {
				log.Printf("Error during instrumentation shutdown: %v", shutdownErr)
			}
		}
	}()

	if instrumentationProvider.Enabled() && config.Transport != transportStdio {
		log.Printf("OpenTelemetry instrumentation enabled (metrics: %s, tracing: %s)",
			instrumentationConfig.MetricsExporter, instrumentationConfig.TracingExporter)
	}

	// Create server context with the Trello client and shutdown context
	serverContext, err := server.NewServerContext(shutdownCtx,
		server.WithTrelloClient(trelloClient),
		server.WithInstrumentationProvider(instrumentationProvider),
		server.WithVersion(rootCmd.Version),
		server.WithReadOnlyMode(config.ReadOnlyMode),
	)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			// Only log shutdown errors for non-stdio transports to avoid output interference
			if config.Transport != transportStdio {
				log.Printf("Error during server context shutdown: %v", err)
			}
		}
	}()

	if config.ReadOnlyMode && config.Transport != transportStdio {
		log.Printf("Read-only mode enabled: mutating tools will be rejected")
	}

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("mcp-trello", rootCmd.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, true),
	)

	// Register all tool categories
	if err := board.RegisterBoardTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register board tools: %w", err)
	}

	if err := list.RegisterListTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register list tools: %w", err)
	}

	if err := card.RegisterCardTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register card tools: %w", err)
	}

	if err := checklist.RegisterChecklistTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register checklist tools: %w", err)
	}

	if err := label.RegisterLabelTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register label tools: %w", err)
	}

	if err := attachment.RegisterAttachmentTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register attachment tools: %w", err)
	}

	// Register the read-only board, list, and card snapshot resources
	if err := resources.RegisterResources(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register resources: %w", err)
	}

	// Start the appropriate server based on transport type
	switch config.Transport {
	case transportStdio:
		// Don't print startup message for stdio mode as it interferes with MCP communication
		return runStdioServer(mcpSrv)
	case transportSSE:
		fmt.Printf("Starting MCP Trello server with %s transport...\n", config.Transport)
		return runSSEServer(mcpSrv, config.HTTPAddr, config.SSEEndpoint, config.MessageEndpoint, shutdownCtx, config.DebugMode)
	case transportStreamableHTTP:
		fmt.Printf("Starting MCP Trello server with %s transport...\n", config.Transport)
		loadMetricsEnvVars(&config.Metrics)
		return runStreamableHTTPServer(mcpSrv, config.HTTPAddr, config.HTTPEndpoint, shutdownCtx, instrumentationProvider, serverContext, config.Metrics)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, sse, streamable-http)", config.Transport)
	}
}
