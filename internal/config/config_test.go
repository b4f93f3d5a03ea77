package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "POSTGRESQL_URI", "PG_DSN", "PG_ENABLED", "SERVER_PORT", "MODEL_PATH", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.Server.AllowedMethods)
	assert.Equal(t, "model.json", cfg.Model.Path)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.PostgreSQL.Enabled)
	assert.Equal(t, 2*time.Second, cfg.PostgreSQL.AuditTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://example.com")
	t.Setenv("MODEL_PATH", "/opt/models/housing.yaml")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/houses")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "/opt/models/housing.yaml", cfg.Model.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.PostgreSQL.Enabled)
	assert.Equal(t, "postgres://u:p@db:5432/houses", cfg.GetPostgreSQLDSN())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("non numeric port falls back to default", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "abc")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 5000, cfg.Server.Port)
	})

	t.Run("out of range port is rejected", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown log format is rejected", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestGetPostgreSQLDSN_FromParts(t *testing.T) {
	cfg := &Config{PostgreSQL: PostgreSQLConfig{
		Host:     "db",
		Port:     5433,
		User:     "svc",
		Password: "secret",
		Database: "house_price",
		SSLMode:  "require",
	}}

	assert.Equal(t, "host=db port=5433 user=svc password=secret dbname=house_price sslmode=require", cfg.GetPostgreSQLDSN())
}
