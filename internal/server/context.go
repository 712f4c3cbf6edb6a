package server

import (
	"context"
	"sync"
	"time"

	"github.com/giantswarm/mcp-trello/internal/instrumentation"
	"github.com/giantswarm/mcp-trello/internal/trello"
)

// DefaultShutdownTimeout bounds graceful shutdown of the HTTP transports.
const DefaultShutdownTimeout = 30 * time.Second

// ServerContext encapsulates all dependencies needed by the MCP server
// and provides a clean abstraction for dependency injection and lifecycle management.
type ServerContext struct {
	// Core dependencies
	trelloClient trello.Client
	logger       Logger
	config       *Config

	// Observability
	instrumentationProvider *instrumentation.Provider
	metrics                 *Metrics

	// Context management
	ctx    context.Context
	cancel context.CancelFunc

	// Lifecycle management
	mu       sync.RWMutex
	shutdown bool
}

// Metrics tracks coarse operational counters for monitoring. These are
// independent of the OpenTelemetry pipeline so they are available even
// when instrumentation is disabled.
type Metrics struct {
	ToolCalls     int64 // Total tool invocations
	ToolErrors    int64 // Tool invocations that returned an error result
	ResourceReads int64 // Total resource reads
	RateLimitHits int64 // Trello 429 responses observed

	mu sync.RWMutex
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncrementToolCalls increments the tool invocation counter
func (m *Metrics) IncrementToolCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ToolCalls++
}

// IncrementToolErrors increments the tool error counter
func (m *Metrics) IncrementToolErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ToolErrors++
}

// IncrementResourceReads increments the resource read counter
func (m *Metrics) IncrementResourceReads() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResourceReads++
}

// IncrementRateLimitHits increments the rate limit counter
func (m *Metrics) IncrementRateLimitHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RateLimitHits++
}

// GetMetrics returns a snapshot of current metrics
func (m *Metrics) GetMetrics() (calls, errors, reads, rateLimits int64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ToolCalls, m.ToolErrors, m.ResourceReads, m.RateLimitHits
}

// NewServerContext creates a new ServerContext with default values.
// Use the provided functional options to customize the context.
func NewServerContext(ctx context.Context, opts ...Option) (*ServerContext, error) {
	// Create a cancellable context
	serverCtx, cancel := context.WithCancel(ctx)

	// Initialize with defaults
	sc := &ServerContext{
		ctx:     serverCtx,
		cancel:  cancel,
		config:  NewDefaultConfig(),
		logger:  NewDefaultLogger(),
		metrics: NewMetrics(),
	}

	// Apply functional options
	for _, opt := range opts {
		if err := opt(sc); err != nil {
			cancel()
			return nil, err
		}
	}

	// Validate required dependencies
	if err := sc.validate(); err != nil {
		cancel()
		return nil, err
	}

	return sc, nil
}

// Context returns the server context for cancellation and deadlines.
func (sc *ServerContext) Context() context.Context {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.ctx
}

// TrelloClient returns the Trello client interface.
func (sc *ServerContext) TrelloClient() trello.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.trelloClient
}

// Metrics returns the metrics tracker.
func (sc *ServerContext) Metrics() *Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// InstrumentationProvider returns the OpenTelemetry provider, or nil
// when instrumentation was never configured.
func (sc *ServerContext) InstrumentationProvider() *instrumentation.Provider {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.instrumentationProvider
}

// Logger returns the logger interface.
func (sc *ServerContext) Logger() Logger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.logger
}

// Config returns the server configuration.
func (sc *ServerContext) Config() *Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// Shutdown gracefully shuts down the server context.
// This cancels the context and releases any resources.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.logger.Info("Shutting down server context")

	// Cancel the context
	if sc.cancel != nil {
		sc.cancel()
	}

	// Mark as shutdown
	sc.shutdown = true

	sc.logger.Info("Server context shutdown complete")
	return nil
}

// IsShutdown returns true if the server context has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// validate ensures all required dependencies are set.
func (sc *ServerContext) validate() error {
	if sc.trelloClient == nil {
		return ErrMissingTrelloClient
	}
	if sc.logger == nil {
		return ErrMissingLogger
	}
	if sc.config == nil {
		return ErrMissingConfig
	}
	return nil
}

// Logger defines the interface for logging operations.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, args ...interface{})

	// Debug logs a debug message.
	Debug(msg string, args ...interface{})

	// Warn logs a warning message.
	Warn(msg string, args ...interface{})

	// Error logs an error message.
	Error(msg string, args ...interface{})

	// With returns a new logger with additional context fields.
	With(args ...interface{}) Logger
}

// Config holds the server configuration.
type Config struct {
	// Server settings
	ServerName string `json:"serverName"`
	Version    string `json:"version"`

	// Read-only mode blocks every tool that mutates Trello state;
	// such tools return an error result instead of calling the API.
	ReadOnlyMode bool `json:"readOnlyMode"`

	// Logging settings
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// NewDefaultConfig creates a configuration with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		ServerName:   "mcp-trello",
		Version:      "0.1.0",
		ReadOnlyMode: false,
		LogLevel:     "info",
		LogFormat:    "json",
	}
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	return &clone
}
