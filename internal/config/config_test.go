package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "cast-match")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_RequiredAndDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cast-match", cfg.App.AppName)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, defaultCacheTTL, cfg.Redis.TTL)
	assert.Empty(t, cfg.Auth.AccessSecret)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, SearchEngineIndex, cfg.Search.Engine)
}

func TestLoad_Optionals(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_TTL", "30")
	t.Setenv("JWT_ACCESS_SECRET", "s3cret")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "s3cret", cfg.Auth.AccessSecret)
	assert.True(t, cfg.Log.JSON)
}

func TestLoad_SearchEngine(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SEARCH_ENGINE", "Relevance")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, SearchEngineRelevance, cfg.Search.Engine)

	t.Setenv("SEARCH_ENGINE", "something-else")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, SearchEngineIndex, cfg.Search.Engine)
}

func TestLoad_BadTTLFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_TTL", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultCacheTTL, cfg.Redis.TTL)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_NAME")
}
