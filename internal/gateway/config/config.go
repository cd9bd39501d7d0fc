// Package config handles configuration for the REST gateway, including
// defaults, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the gateway.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public REST endpoint.
//   - GRPCServerAddr: address of the backend directory server.
//   - RequestTimeout: per-request deadline on forwarded RPC calls.
//   - SeedFile: optional JSON file with users to load at startup; the
//     seed sequence is skipped when empty.
type Config struct {
	EndpointAddrHTTP string
	GRPCServerAddr   string
	RequestTimeout   time.Duration
	SeedFile         string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8091"
	c.GRPCServerAddr = "localhost:8081"
	c.RequestTimeout = 10 * time.Second
	c.SeedFile = ""
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
