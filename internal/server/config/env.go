package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file
// in the working directory is loaded first if present.
//
// Recognized variables:
//
//	GRPC_PORT           port for the gRPC endpoint
//	DB_URL              base URL of the record store
//	JWT_SECRET          HMAC secret for signing tokens
//	JWT_EXPIRES_IN      token validity as a Go duration (e.g. "24h")
//	BCRYPT_SALT_ROUNDS  bcrypt cost factor
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("GRPC_PORT"); ok {
		config.EndpointAddrGRPC = ":" + v
	}
	if v, ok := os.LookupEnv("DB_URL"); ok {
		config.StoreBaseURL = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.JWTSecret = v
	}
	if v, ok := os.LookupEnv("JWT_EXPIRES_IN"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_SALT_ROUNDS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
