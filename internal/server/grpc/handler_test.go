package grpc

import (
	"context"
	"fmt"
	"testing"

	"github.com/avoronin/userdir/internal/common"
	pb "github.com/avoronin/userdir/internal/proto"
	"github.com/avoronin/userdir/internal/server/users"
)

// ---- fakes ----

type fakeDirectory struct {
	createID  string
	createErr error

	getUser *users.User
	getErr  error

	listPage *users.Page
	listErr  error

	loginToken string
	loginErr   error
}

func (f *fakeDirectory) CreateUser(ctx context.Context, firstName, lastName, company, email, password string) (string, error) {
	return f.createID, f.createErr
}
func (f *fakeDirectory) GetUser(ctx context.Context, userID string) (*users.User, error) {
	return f.getUser, f.getErr
}
func (f *fakeDirectory) GetUsersList(ctx context.Context, offset, limit int) (*users.Page, error) {
	return f.listPage, f.listErr
}
func (f *fakeDirectory) LoginUser(ctx context.Context, email, password string) (string, error) {
	return f.loginToken, f.loginErr
}

// ---- helpers ----

func newServer(d directory) *GRPCServer {
	return &GRPCServer{
		address: "127.0.0.1:0",
		users:   d,
		logger:  nopLogger{},
	}
}

// ---- tests ----

func TestCreateUser_OK(t *testing.T) {
	s := newServer(&fakeDirectory{createID: "42"})
	resp, err := s.CreateUser(context.Background(), &pb.CreateUserRequest{Email: "a@b.c"})
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if resp.GetUserId() != "42" || resp.GetError() != "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateUser_DuplicateEmailInPayload(t *testing.T) {
	s := newServer(&fakeDirectory{createErr: common.ErrDuplicateEmail})
	resp, err := s.CreateUser(context.Background(), &pb.CreateUserRequest{Email: "a@b.c"})
	if err != nil {
		t.Fatalf("domain failures must not be status errors, got %v", err)
	}
	if resp.GetError() != "User with this email already exists" {
		t.Fatalf("unexpected error string: %q", resp.GetError())
	}
}

func TestCreateUser_StoreFailureInPayload(t *testing.T) {
	s := newServer(&fakeDirectory{
		createErr: fmt.Errorf("error checking email: %w", common.ErrStoreUnavailable),
	})
	resp, err := s.CreateUser(context.Background(), &pb.CreateUserRequest{Email: "a@b.c"})
	if err != nil {
		t.Fatalf("domain failures must not be status errors, got %v", err)
	}
	want := "Failed to create user: error checking email: store unavailable"
	if resp.GetError() != want {
		t.Fatalf("got %q, want %q", resp.GetError(), want)
	}
}

func TestGetUser_OKExcludesPassword(t *testing.T) {
	s := newServer(&fakeDirectory{getUser: &users.User{
		UserID:    "u1",
		FirstName: "John",
		LastName:  "Doe",
		Company:   "ACME Inc.",
		Email:     "john@example.com",
	}})
	resp, err := s.GetUser(context.Background(), &pb.GetUserRequest{UserId: "u1"})
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if resp.GetUserId() != "u1" || resp.GetEmail() != "john@example.com" || resp.GetError() != "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	s := newServer(&fakeDirectory{getErr: common.ErrNotFound})
	resp, err := s.GetUser(context.Background(), &pb.GetUserRequest{UserId: "nope"})
	if err != nil {
		t.Fatalf("domain failures must not be status errors, got %v", err)
	}
	if resp.GetError() != "User not found" {
		t.Fatalf("unexpected error string: %q", resp.GetError())
	}
}

func TestGetUsersList_OK(t *testing.T) {
	s := newServer(&fakeDirectory{listPage: &users.Page{
		Users: []users.ListEntry{
			{UserID: "u1", Email: "a@example.com"},
			{UserID: "u2", Email: "b@example.com"},
		},
		Total:  12,
		Offset: 0,
		Limit:  5,
	}})
	resp, err := s.GetUsersList(context.Background(), &pb.GetUsersListRequest{Offset: 0, Limit: 5})
	if err != nil {
		t.Fatalf("GetUsersList error: %v", err)
	}
	if resp.GetTotal() != 12 || len(resp.GetUsers()) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.GetUsers()[0].GetUserId() != "u1" || resp.GetUsers()[0].GetEmail() != "a@example.com" {
		t.Fatalf("unexpected first summary: %+v", resp.GetUsers()[0])
	}
}

func TestGetUsersList_InvalidLimitEchoesWindow(t *testing.T) {
	s := newServer(&fakeDirectory{
		listPage: &users.Page{Users: []users.ListEntry{}, Offset: 3, Limit: 7},
		listErr:  common.ErrInvalidLimit,
	})
	resp, err := s.GetUsersList(context.Background(), &pb.GetUsersListRequest{Offset: 3, Limit: 7})
	if err != nil {
		t.Fatalf("domain failures must not be status errors, got %v", err)
	}
	if resp.GetError() != "Limit must be 5, 10, or 25" {
		t.Fatalf("unexpected error string: %q", resp.GetError())
	}
	if resp.GetOffset() != 3 || resp.GetLimit() != 7 || resp.GetTotal() != 0 || len(resp.GetUsers()) != 0 {
		t.Fatalf("unexpected echo: %+v", resp)
	}
}

func TestLoginUser_OK(t *testing.T) {
	s := newServer(&fakeDirectory{loginToken: "tok"})
	resp, err := s.LoginUser(context.Background(), &pb.LoginUserRequest{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("LoginUser error: %v", err)
	}
	if resp.GetToken() != "tok" || resp.GetError() != "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLoginUser_InvalidCredentials(t *testing.T) {
	s := newServer(&fakeDirectory{loginErr: common.ErrInvalidCredentials})
	resp, err := s.LoginUser(context.Background(), &pb.LoginUserRequest{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("domain failures must not be status errors, got %v", err)
	}
	if resp.GetError() != "Invalid credentials" {
		t.Fatalf("unexpected error string: %q", resp.GetError())
	}
	if resp.GetToken() != "" {
		t.Fatalf("token must be empty on failure, got %q", resp.GetToken())
	}
}
