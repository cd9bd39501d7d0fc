package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// requestLogInterceptor logs every unary call with its duration. Domain
// failures travel inside response payloads, so err here only reflects
// transport-level problems.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	start := time.Now()
	resp, err := handler(ctx, req)

	if err != nil {
		s.logger.Error(ctx, "request failed", "method", info.FullMethod, "duration", time.Since(start).String(), "error", err.Error())
	} else {
		s.logger.Info(ctx, "request handled", "method", info.FullMethod, "duration", time.Since(start).String())
	}

	return resp, err
}
