package grpc

import (
	"context"
	"net"

	"github.com/avoronin/userdir/internal/logging"
	pb "github.com/avoronin/userdir/internal/proto"
	"github.com/avoronin/userdir/internal/server/users"
	"google.golang.org/grpc"
)

// directory is the slice of users.Service the handlers need; tests
// substitute a fake.
type directory interface {
	CreateUser(ctx context.Context, firstName, lastName, company, email, password string) (string, error)
	GetUser(ctx context.Context, userID string) (*users.User, error)
	GetUsersList(ctx context.Context, offset, limit int) (*users.Page, error)
	LoginUser(ctx context.Context, email, password string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedUserServiceServer
	address string
	users   directory
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us *users.Service) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor))

	// registers service
	pb.RegisterUserServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
