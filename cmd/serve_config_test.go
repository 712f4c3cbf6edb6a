package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvIfEmpty(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		envValue string
		expected string
	}{
		{
			name:     "empty target takes env value",
			initial:  "",
			envValue: "from-env",
			expected: "from-env",
		},
		{
			name:     "set target wins over env",
			initial:  "from-flag",
			envValue: "from-env",
			expected: "from-flag",
		},
		{
			name:     "empty target and empty env stays empty",
			initial:  "",
			envValue: "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MCP_TRELLO_TEST_ENV", tt.envValue)

			target := tt.initial
			loadEnvIfEmpty(&target, "MCP_TRELLO_TEST_ENV")
			assert.Equal(t, tt.expected, target)
		})
	}
}

func TestLoadMetricsEnvVars(t *testing.T) {
	t.Run("env enables metrics when flag unset", func(t *testing.T) {
		t.Setenv("METRICS_ENABLED", "true")
		t.Setenv("METRICS_ADDR", ":9191")

		config := MetricsServeConfig{}
		loadMetricsEnvVars(&config)

		assert.True(t, config.Enabled)
		assert.Equal(t, ":9191", config.Addr)
	})

	t.Run("flag values win over env", func(t *testing.T) {
		t.Setenv("METRICS_ENABLED", "false")
		t.Setenv("METRICS_ADDR", ":9191")

		config := MetricsServeConfig{Enabled: true, Addr: ":9090"}
		loadMetricsEnvVars(&config)

		assert.True(t, config.Enabled)
		assert.Equal(t, ":9090", config.Addr)
	})

	t.Run("non-true env value does not enable", func(t *testing.T) {
		t.Setenv("METRICS_ENABLED", "yes")
		t.Setenv("METRICS_ADDR", "")

		config := MetricsServeConfig{}
		loadMetricsEnvVars(&config)

		assert.False(t, config.Enabled)
		assert.Empty(t, config.Addr)
	})
}

func TestSimpleLoggerImplementsTrelloLogger(t *testing.T) {
	logger := &simpleLogger{}

	assert.NotPanics(t, func() {
		logger.Debug("debug", "k", "v")
		logger.Info("info")
		logger.Warn("warn")
		logger.Error("error", "k", "v")
	})
}
