package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8091", cfg.EndpointAddrHTTP)
	assert.Equal(t, "localhost:8081", cfg.GRPCServerAddr)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.SeedFile)
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("PORT", "8100")
	t.Setenv("GRPC_SERVER_URL", "backend:8081")
	t.Setenv("USERS_INIT_FILE", "users-init.json")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":8100", cfg.EndpointAddrHTTP)
	assert.Equal(t, "backend:8081", cfg.GRPCServerAddr)
	assert.Equal(t, "users-init.json", cfg.SeedFile)
}
