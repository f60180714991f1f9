package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "proconnect_test")
}

func TestLoadMissingSecretFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "proconnect_test")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadMissingMongoURIFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DATABASE", "proconnect_test")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URI")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.ClientTimeout)
	assert.Equal(t, 8, cfg.EnrichConcurrency)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "*", cfg.CORSOrigin)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("API_PORT", "9001")
	t.Setenv("SESSION_TTL_DAYS", "7")
	t.Setenv("CLIENT_TIMEOUT_SECONDS", "2")
	t.Setenv("ENRICH_CONCURRENCY", "16")
	t.Setenv("IDENTITY_SERVICE_URL", "http://identity:9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 2*time.Second, cfg.ClientTimeout)
	assert.Equal(t, 16, cfg.EnrichConcurrency)
	assert.Equal(t, "http://identity:9000", cfg.IdentityURL)
}

func TestLoadClampsEnrichConcurrency(t *testing.T) {
	setRequired(t)
	t.Setenv("ENRICH_CONCURRENCY", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.EnrichConcurrency)
}
