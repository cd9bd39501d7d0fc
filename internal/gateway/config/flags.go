package config

import (
	"flag"
	"os"

	"github.com/avoronin/userdir/internal/flagx"
)

// parseFlags populates selected gateway Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8091")
//	-g string   backend gRPC server address
//	-f string   startup seed file path
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-f"})

	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run the REST gateway")
	fs.StringVar(&config.GRPCServerAddr, "g", config.GRPCServerAddr, "backend gRPC server address")
	fs.StringVar(&config.SeedFile, "f", config.SeedFile, "startup seed file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
