// Package config handles configuration for the server component,
// including defaults, environment variables, JSON overlay, and
// command-line flags.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the file explorer server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DataDir: base directory of the served tree; all file access is
//     confined to it.
//   - UsersFile: path of the JSON credential store.
//   - SecretKey: HMAC secret for signing JWTs (HS256). When left empty,
//     the server generates an ephemeral secret at startup and issued
//     tokens do not survive a restart.
//   - TokenValidityDuration: session token lifetime.
//   - RateLimitWindow / APIRateLimit / FileRateLimit / AuthRateLimit:
//     per-client request ceilings per window for the three limiter tiers.
type Config struct {
	EndpointAddr          string
	DataDir               string
	UsersFile             string
	SecretKey             string
	TokenValidityDuration time.Duration
	RateLimitWindow       time.Duration
	APIRateLimit          int
	FileRateLimit         int
	AuthRateLimit         int
}

// LoadDefaults populates Config with sensible development defaults.
// The secret key is deliberately left empty so an unconfigured server
// gets a random one instead of a well-known constant.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DataDir = "data"
	c.UsersFile = ""
	c.SecretKey = ""
	c.TokenValidityDuration = 7 * 24 * time.Hour
	c.RateLimitWindow = 15 * time.Minute
	c.APIRateLimit = 100
	c.FileRateLimit = 200
	c.AuthRateLimit = 5
}

// parseEnv overlays values from the process environment. A .env file in
// the working directory is loaded first if present.
func parseEnv(c *Config) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using defaults/env vars")
	}
	if v := os.Getenv("ADDRESS"); v != "" {
		c.EndpointAddr = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.SecretKey = v
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file, and finally command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
