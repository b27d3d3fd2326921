package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

func TestLoad_SampleConfig(t *testing.T) {
	var cfg Config
	require.NoError(t, cleanenvport.LoadPath(filepath.Join("..", "..", "config", "config.yaml"), &cfg))

	assert.Equal(t, "eventhub", cfg.Postgres.Database)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, "admin@eventhub.local", cfg.Admin.Email)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":8080\"\n"), 0o600))

	var cfg Config
	err := cleanenvport.LoadPath(path, &cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, cleanenvport.ErrConfigValidation)
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "eventhub", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=eventhub sslmode=disable", p.DSN())
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "verbose"}.LogLevel())
}
