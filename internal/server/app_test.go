package server

import (
	"encoding/hex"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fileexplorer/internal/server/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	var c config.Config
	c.LoadDefaults()
	c.DataDir = filepath.Join(t.TempDir(), "data")
	return &c
}

func TestNewApp_GeneratesSecretWhenUnset(t *testing.T) {
	cfg := testConfig(t)
	require.Empty(t, cfg.SecretKey)

	_, err := NewApp(cfg)
	require.NoError(t, err)

	require.NotEmpty(t, cfg.SecretKey)
	raw, err := hex.DecodeString(cfg.SecretKey)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestNewApp_GeneratedSecretsDiffer(t *testing.T) {
	cfg1 := testConfig(t)
	cfg2 := testConfig(t)

	_, err := NewApp(cfg1)
	require.NoError(t, err)
	_, err = NewApp(cfg2)
	require.NoError(t, err)

	assert.NotEqual(t, cfg1.SecretKey, cfg2.SecretKey)
}

func TestNewApp_KeepsConfiguredSecret(t *testing.T) {
	cfg := testConfig(t)
	cfg.SecretKey = "configured-secret"
	cfg.TokenValidityDuration = time.Hour

	_, err := NewApp(cfg)
	require.NoError(t, err)

	assert.Equal(t, "configured-secret", cfg.SecretKey)
}
