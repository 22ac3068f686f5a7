package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load mutates the package-level config, so these tests do not run in parallel.

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("CATALOG_BASE_URL", "https://catalog.example.com/api")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("KAFKA_BROKERS", "")

	require.NoError(t, Load())

	c := C()
	assert.Equal(t, "0.0.0.0:8080", c.Server.Address())
	assert.Equal(t, 10*time.Second, c.Server.ShutdownTimeout())
	assert.Equal(t, "info", c.Logger.Level())
	assert.Equal(t, "https://catalog.example.com/api", c.Catalog.BaseURL())
	assert.Equal(t, uint64(3), c.Catalog.RetryAttempts())
	assert.False(t, c.Redis.Enabled())
	assert.False(t, c.Kafka.Enabled())
	assert.Equal(t, 30*time.Minute, c.Session.IdleTTL())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CATALOG_BASE_URL", "http://catalog:3000")
	t.Setenv("CATALOG_TIMEOUT", "3s")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_TTL", "90s")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("SEARCH_PERFORMED_TOPIC_NAME", "searches")

	require.NoError(t, Load())

	c := C()
	assert.Equal(t, "127.0.0.1:9090", c.Server.Address())
	assert.Equal(t, 3*time.Second, c.Catalog.Timeout())
	assert.True(t, c.Redis.Enabled())
	assert.Equal(t, 90*time.Second, c.Redis.TTL())
	assert.True(t, c.Kafka.Enabled())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Brokers())
	assert.Equal(t, "searches", c.Kafka.SearchPerformedTopic())
	assert.True(t, c.Kafka.SearchPerformedProducerConfig().Producer.Return.Successes)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing port",
			env:  map[string]string{"HTTP_PORT": "", "CATALOG_BASE_URL": "http://catalog"},
		},
		{
			name: "missing catalog url",
			env:  map[string]string{"HTTP_PORT": "8080", "CATALOG_BASE_URL": ""},
		},
		{
			name: "relative catalog url",
			env:  map[string]string{"HTTP_PORT": "8080", "CATALOG_BASE_URL": "catalog/api"},
		},
		{
			name: "bad duration",
			env:  map[string]string{"HTTP_PORT": "8080", "CATALOG_BASE_URL": "http://catalog", "SESSION_IDLE_TTL": "soon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if tt.env["HTTP_PORT"] == "" {
				require.NoError(t, os.Unsetenv("HTTP_PORT"))
			}
			if tt.env["CATALOG_BASE_URL"] == "" {
				require.NoError(t, os.Unsetenv("CATALOG_BASE_URL"))
			}

			assert.Error(t, Load())
		})
	}
}

func TestLoad_Dotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=7070\nCATALOG_BASE_URL=http://from-dotenv\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("CATALOG_BASE_URL", "")
	require.NoError(t, os.Unsetenv("HTTP_PORT"))
	require.NoError(t, os.Unsetenv("CATALOG_BASE_URL"))

	require.NoError(t, Load(path))

	assert.Equal(t, 7070, C().Server.Port())
	assert.Equal(t, "http://from-dotenv", C().Catalog.BaseURL())
}
