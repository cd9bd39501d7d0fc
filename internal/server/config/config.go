// Package config handles configuration for the backend server, including
// defaults, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the user directory server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - StoreBaseURL: base URL of the HTTP record store.
//   - JWTSecret: HMAC secret for signing tokens (HS256). Do not use the
//     default outside development.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - BcryptCost: work factor for password hashing.
type Config struct {
	EndpointAddrGRPC      string
	StoreBaseURL          string
	JWTSecret             string
	TokenValidityDuration time.Duration
	BcryptCost            int
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":8081"
	c.StoreBaseURL = "http://localhost:3000"
	c.JWTSecret = "your-secret-key"
	c.TokenValidityDuration = 24 * time.Hour
	c.BcryptCost = 10
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
