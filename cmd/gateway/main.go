package main

import (
	"context"
	"log"

	"github.com/avoronin/userdir/internal/gateway"
	"github.com/avoronin/userdir/internal/gateway/config"
	"github.com/avoronin/userdir/internal/logging"
	pb "github.com/avoronin/userdir/internal/proto"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	logger := logging.NewZapLogger(zl)

	conn, err := grpc.NewClient(cfg.GRPCServerAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Error(ctx, "gRPC client init failed", "error", err.Error())
		return
	}
	defer conn.Close()

	client := pb.NewUserServiceClient(conn)
	handler := gateway.NewHandler(client, cfg.RequestTimeout, logger)

	if cfg.SeedFile != "" {
		go func() {
			runner := gateway.NewSeedRunner(client, logger, cfg.RequestTimeout)
			if err := runner.Run(ctx, cfg.SeedFile); err != nil {
				logger.Error(ctx, "Seed sequence failed", "error", err.Error())
			}
		}()
	}

	logger.Info(ctx, "Starting REST gateway", "address", cfg.EndpointAddrHTTP, "backend", cfg.GRPCServerAddr)

	if err := handler.Router().Run(cfg.EndpointAddrHTTP); err != nil {
		logger.Error(ctx, "gateway stopped", "error", err.Error())
	}
}
