package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, c.Addr, ":8080")
	assert.Equal(t, c.DatabaseURL, "")
	assert.Equal(t, c.SessionTTL, 24*time.Hour)
	assert.False(t, c.OIDC.Enabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/feedback_db")
	t.Setenv("SESSION_TTL", "30m")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, c.Addr, ":9000")
	assert.Equal(t, c.DatabaseURL, "postgres://localhost/feedback_db")
	assert.Equal(t, c.SessionTTL, 30*time.Minute)
}

func TestLoad_OIDCRequiresEndpoints(t *testing.T) {
	t.Setenv("OIDC_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_OIDCComplete(t *testing.T) {
	t.Setenv("OIDC_ENABLED", "true")
	t.Setenv("OIDC_ISSUER_URL", "https://issuer.example.com")
	t.Setenv("OIDC_CLIENT_ID", "feedback")
	t.Setenv("OIDC_CLIENT_SECRET", "hunter2")
	t.Setenv("OIDC_REDIRECT_URL", "https://app.example.com/sso/callback")

	c, err := Load()
	require.NoError(t, err)
	assert.True(t, c.OIDC.Enabled)
	assert.Equal(t, c.OIDC.IssuerURL, "https://issuer.example.com")
}
