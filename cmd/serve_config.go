package cmd

import (
	"log"
	"os"

	"github.com/giantswarm/mcp-trello/internal/trello"
)

// simpleLogger provides basic logging for the Trello client
type simpleLogger struct{}

var _ trello.Logger = (*simpleLogger)(nil)

func (l *simpleLogger) Debug(msg string, args ...interface{}) {
	log.Printf("[DEBUG] %s %v", msg, args)
}

func (l *simpleLogger) Info(msg string, args ...interface{}) {
	log.Printf("[INFO] %s %v", msg, args)
}

func (l *simpleLogger) Warn(msg string, args ...interface{}) {
	log.Printf("[WARN] %s %v", msg, args)
}

func (l *simpleLogger) Error(msg string, args ...interface{}) {
	log.Printf("[ERROR] %s %v", msg, args)
}

// ServeConfig holds all configuration for the serve command.
type ServeConfig struct {
	// Transport settings
	Transport string
	HTTPAddr  string

	// Endpoint paths
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string

	// Trello client settings
	APIKey   string
	APIToken string

	// Server behavior
	ReadOnlyMode bool
	DebugMode    bool

	// Metrics server settings
	Metrics MetricsServeConfig
}

// MetricsServeConfig holds configuration for the dedicated metrics server.
type MetricsServeConfig struct {
	// Enabled controls whether the metrics server is started at all.
	Enabled bool

	// Addr is the listen address for the metrics server.
	Addr string
}

// loadEnvIfEmpty loads an environment variable into a string pointer if it's empty.
func loadEnvIfEmpty(target *string, envKey string) {
	if *target == "" {
		*target = os.Getenv(envKey)
	}
}

// loadMetricsEnvVars loads metrics server configuration from environment
// variables. Values already set via flags win.
func loadMetricsEnvVars(config *MetricsServeConfig) {
	if !config.Enabled && os.Getenv("METRICS_ENABLED") == envValueTrue {
		config.Enabled = true
	}
	loadEnvIfEmpty(&config.Addr, "METRICS_ADDR")
}
