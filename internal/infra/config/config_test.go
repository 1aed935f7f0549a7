package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 15*time.Minute, cfg.Suggest.CacheTTL)
	require.Equal(t, 5, cfg.Closet.SimilarLimit)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9999")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("AUTH_SECRET", "env-secret")
	t.Setenv("AUTH_TOKEN_TTL", "30m")
	t.Setenv("CLOSET_POSTGRES_DSN", "postgres://localhost/closet")
	t.Setenv("SUGGEST_CACHE_TTL", "1h")
	t.Setenv("SUGGEST_REDIS_ENABLED", "true")
	t.Setenv("SUGGEST_REDIS_ADDR", "localhost:6379")
	t.Setenv("COLOR_EXTRACT_BASE_URL", "https://colors.example.com")

	cfg := defaultConfig()
	applyEnvOverrides(cfg)

	require.Equal(t, ":9999", cfg.HTTP.Address)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "env-secret", cfg.Auth.Secret)
	require.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	require.Equal(t, "postgres://localhost/closet", cfg.Closet.Postgres.DSN)
	require.Equal(t, time.Hour, cfg.Suggest.CacheTTL)
	require.True(t, cfg.Suggest.Redis.Enabled)
	require.Equal(t, "localhost:6379", cfg.Suggest.Redis.Addr)
	require.Equal(t, "https://colors.example.com", cfg.ColorExtract.BaseURL)
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := defaultConfig()
	cfg.Auth.Secret = " "
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.Suggest.Redis.Enabled = true
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.Storage.Endpoint = "https://s3.example.com"
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.HTTP.RateLimit.Enabled = true
	cfg.HTTP.RateLimit.RequestsPerMinute = 0
	require.Error(t, cfg.Validate())
}
