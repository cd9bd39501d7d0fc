package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	pb "github.com/avoronin/userdir/internal/proto"
	"google.golang.org/grpc"
)

// countingClient answers every RPC successfully and counts calls, so the
// seed sequence can be verified step by step.
type countingClient struct {
	creates []string
	lists   []*pb.GetUsersListRequest
	logins  []string

	rejectEmails map[string]string
}

func (c *countingClient) CreateUser(ctx context.Context, in *pb.CreateUserRequest, opts ...grpc.CallOption) (*pb.CreateUserResponse, error) {
	c.creates = append(c.creates, in.GetEmail())
	if msg, ok := c.rejectEmails[in.GetEmail()]; ok {
		return &pb.CreateUserResponse{Error: msg}, nil
	}
	return &pb.CreateUserResponse{UserId: "id-" + in.GetEmail()}, nil
}

func (c *countingClient) GetUser(ctx context.Context, in *pb.GetUserRequest, opts ...grpc.CallOption) (*pb.GetUserResponse, error) {
	return &pb.GetUserResponse{UserId: in.GetUserId()}, nil
}

func (c *countingClient) GetUsersList(ctx context.Context, in *pb.GetUsersListRequest, opts ...grpc.CallOption) (*pb.GetUsersListResponse, error) {
	c.lists = append(c.lists, in)
	return &pb.GetUsersListResponse{Users: []*pb.UserSummary{}, Offset: in.GetOffset(), Limit: in.GetLimit()}, nil
}

func (c *countingClient) LoginUser(ctx context.Context, in *pb.LoginUserRequest, opts ...grpc.CallOption) (*pb.LoginUserResponse, error) {
	c.logins = append(c.logins, in.GetEmail())
	return &pb.LoginUserResponse{Token: "tok"}, nil
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users-init.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSeedRunner_FullSequence(t *testing.T) {
	client := &countingClient{}
	runner := NewSeedRunner(client, nopLogger{}, time.Second)

	path := writeSeedFile(t, `[
		{"firstName":"John","lastName":"Doe","company":"ACME","email":"john@example.com","password":"pw1"},
		{"firstName":"Jane","lastName":"Doe","company":"ACME","email":"jane@example.com","password":"pw2"}
	]`)

	if err := runner.Run(context.Background(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two seed creates plus the deliberate duplicate attempt.
	if len(client.creates) != 3 {
		t.Fatalf("expected 3 create calls, got %v", client.creates)
	}
	if client.creates[2] != "john@example.com" {
		t.Fatalf("duplicate attempt must reuse the first email, got %q", client.creates[2])
	}

	if len(client.lists) != 2 {
		t.Fatalf("expected 2 list calls, got %d", len(client.lists))
	}
	if client.lists[0].GetOffset() != 5 || client.lists[0].GetLimit() != 5 {
		t.Fatalf("unexpected first page: %+v", client.lists[0])
	}
	if client.lists[1].GetOffset() != 10 || client.lists[1].GetLimit() != 10 {
		t.Fatalf("unexpected second page: %+v", client.lists[1])
	}

	if len(client.logins) != 1 || client.logins[0] != "john@example.com" {
		t.Fatalf("expected one login with first email, got %v", client.logins)
	}
}

func TestSeedRunner_PayloadRejectionsAreNotFatal(t *testing.T) {
	client := &countingClient{
		rejectEmails: map[string]string{"jane@example.com": "User with this email already exists"},
	}
	runner := NewSeedRunner(client, nopLogger{}, time.Second)

	path := writeSeedFile(t, `[
		{"email":"john@example.com","password":"pw1"},
		{"email":"jane@example.com","password":"pw2"}
	]`)

	if err := runner.Run(context.Background(), path); err != nil {
		t.Fatalf("payload-level rejections must not fail the run: %v", err)
	}
}

func TestSeedRunner_MissingFile(t *testing.T) {
	runner := NewSeedRunner(&countingClient{}, nopLogger{}, time.Second)

	if err := runner.Run(context.Background(), "no-such-file.json"); err == nil {
		t.Fatal("expected an error for a missing seed file")
	}
}

func TestSeedRunner_MalformedFile(t *testing.T) {
	runner := NewSeedRunner(&countingClient{}, nopLogger{}, time.Second)
	path := writeSeedFile(t, `{not json`)

	if err := runner.Run(context.Background(), path); err == nil {
		t.Fatal("expected an error for a malformed seed file")
	}
}

func TestSeedRunner_EmptyListSkipsDuplicateAndLogin(t *testing.T) {
	client := &countingClient{}
	runner := NewSeedRunner(client, nopLogger{}, time.Second)
	path := writeSeedFile(t, `[]`)

	if err := runner.Run(context.Background(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.creates) != 0 || len(client.logins) != 0 {
		t.Fatalf("no creates or logins expected, got %v / %v", client.creates, client.logins)
	}
}
