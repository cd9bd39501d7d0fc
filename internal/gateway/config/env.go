package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file
// in the working directory is loaded first if present.
//
// Recognized variables:
//
//	PORT             port for the REST endpoint
//	GRPC_SERVER_URL  address of the backend directory server
//	USERS_INIT_FILE  path to the startup seed file
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("PORT"); ok {
		config.EndpointAddrHTTP = ":" + v
	}
	if v, ok := os.LookupEnv("GRPC_SERVER_URL"); ok {
		config.GRPCServerAddr = v
	}
	if v, ok := os.LookupEnv("USERS_INIT_FILE"); ok {
		config.SeedFile = v
	}
}
