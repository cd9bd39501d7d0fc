package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8081", cfg.EndpointAddrGRPC)
	assert.Equal(t, "http://localhost:3000", cfg.StoreBaseURL)
	assert.Equal(t, "your-secret-key", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("GRPC_PORT", "9090")
	t.Setenv("DB_URL", "http://store:3000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_IN", "12h")
	t.Setenv("BCRYPT_SALT_ROUNDS", "4")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddrGRPC)
	assert.Equal(t, "http://store:3000", cfg.StoreBaseURL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 12*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 4, cfg.BcryptCost)
}

func TestParseEnv_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "tomorrow")
	t.Setenv("BCRYPT_SALT_ROUNDS", "lots")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
}
