package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddr, ":3000")
	assert.Equal(t, c.DataDir, "data")
	assert.Equal(t, c.UsersFile, "")
	assert.Equal(t, c.SecretKey, "")
	assert.Equal(t, c.TokenValidityDuration, 7*24*time.Hour)
	assert.Equal(t, c.RateLimitWindow, 15*time.Minute)
	assert.Equal(t, c.APIRateLimit, 100)
	assert.Equal(t, c.FileRateLimit, 200)
	assert.Equal(t, c.AuthRateLimit, 5)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddr, ":3000")
	assert.Equal(t, c.DataDir, "data")
	assert.Equal(t, c.SecretKey, "")
	assert.Equal(t, c.TokenValidityDuration, 7*24*time.Hour)
	assert.Equal(t, c.RateLimitWindow, 15*time.Minute)
	assert.Equal(t, c.APIRateLimit, 100)
	assert.Equal(t, c.FileRateLimit, 200)
	assert.Equal(t, c.AuthRateLimit, 5)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("ADDRESS", ":9999")
	t.Setenv("DATA_DIR", "/srv/files")
	t.Setenv("JWT_SECRET", "env-secret")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, c.EndpointAddr, ":9999")
	assert.Equal(t, c.DataDir, "/srv/files")
	assert.Equal(t, c.SecretKey, "env-secret")
}
