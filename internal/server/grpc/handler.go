package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoronin/userdir/internal/common"
	pb "github.com/avoronin/userdir/internal/proto"
)

// Handlers map domain sentinels to the error strings the gateway passes
// through verbatim. Failures never become gRPC status errors; every
// response carries its own error field.

func (s *GRPCServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.CreateUserResponse, error) {

	userID, err := s.users.CreateUser(ctx, req.FirstName, req.LastName, req.Company, req.Email, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return &pb.CreateUserResponse{Error: "User with this email already exists"}, nil
		}
		s.logger.Error(ctx, err.Error())
		return &pb.CreateUserResponse{Error: fmt.Sprintf("Failed to create user: %v", err)}, nil
	}

	s.logger.Info(ctx, "User created", "email", req.Email)
	return &pb.CreateUserResponse{UserId: userID}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {

	user, err := s.users.GetUser(ctx, req.UserId)

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &pb.GetUserResponse{Error: "User not found"}, nil
		}
		s.logger.Error(ctx, err.Error())
		return &pb.GetUserResponse{Error: fmt.Sprintf("User not found: %v", err)}, nil
	}

	return &pb.GetUserResponse{
		UserId:    user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Company:   user.Company,
		Email:     user.Email,
	}, nil
}

func (s *GRPCServer) GetUsersList(ctx context.Context, req *pb.GetUsersListRequest) (*pb.GetUsersListResponse, error) {

	page, err := s.users.GetUsersList(ctx, int(req.Offset), int(req.Limit))

	resp := &pb.GetUsersListResponse{
		Users:  []*pb.UserSummary{},
		Total:  int32(page.Total),
		Offset: int32(page.Offset),
		Limit:  int32(page.Limit),
	}

	if err != nil {
		if errors.Is(err, common.ErrInvalidLimit) {
			resp.Error = "Limit must be 5, 10, or 25"
			return resp, nil
		}
		s.logger.Error(ctx, err.Error())
		resp.Error = fmt.Sprintf("Failed to get users: %v", err)
		return resp, nil
	}

	for _, u := range page.Users {
		resp.Users = append(resp.Users, &pb.UserSummary{UserId: u.UserID, Email: u.Email})
	}

	return resp, nil
}

func (s *GRPCServer) LoginUser(ctx context.Context, req *pb.LoginUserRequest) (*pb.LoginUserResponse, error) {

	token, err := s.users.LoginUser(ctx, req.Email, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return &pb.LoginUserResponse{Error: "Invalid credentials"}, nil
		}
		s.logger.Error(ctx, err.Error())
		return &pb.LoginUserResponse{Error: fmt.Sprintf("Login failed: %v", err)}, nil
	}

	s.logger.Info(ctx, "User logged in", "email", req.Email)
	return &pb.LoginUserResponse{Token: token}, nil
}
