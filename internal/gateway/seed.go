package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/avoronin/userdir/internal/logging"
	pb "github.com/avoronin/userdir/internal/proto"
)

// SeedRunner exercises the directory service at startup: it bulk-creates
// users from a JSON file, fetches two list pages, provokes a
// duplicate-email rejection, and logs in with the first seeded user.
// Outcomes are logged; payload-level errors are expected and not fatal.
type SeedRunner struct {
	client  pb.UserServiceClient
	logger  logging.Logger
	timeout time.Duration
}

type seedUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func NewSeedRunner(client pb.UserServiceClient, logger logging.Logger, timeout time.Duration) *SeedRunner {
	return &SeedRunner{
		client:  client,
		logger:  logger.With("module", "seed"),
		timeout: timeout,
	}
}

// Run executes the whole seed sequence. Only file-level problems are
// returned as errors.
func (r *SeedRunner) Run(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading seed file: %w", err)
	}

	var seeds []seedUser
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("error parsing seed file: %w", err)
	}

	r.logger.Info(ctx, "Seed sequence started", "users", len(seeds))

	created := r.createAll(ctx, seeds)
	r.listPage(ctx, 5, 5)
	r.listPage(ctx, 10, 10)

	if len(seeds) > 0 {
		r.tryDuplicate(ctx, seeds[0].Email)
		r.tryLogin(ctx, seeds[0])
	}

	r.logger.Info(ctx, "Seed sequence completed", "created", created)
	return nil
}

func (r *SeedRunner) call(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *SeedRunner) createAll(ctx context.Context, seeds []seedUser) int {
	created := 0
	for _, su := range seeds {
		cctx, cancel := r.call(ctx)
		resp, err := r.client.CreateUser(cctx, &pb.CreateUserRequest{
			FirstName: su.FirstName,
			LastName:  su.LastName,
			Company:   su.Company,
			Email:     su.Email,
			Password:  su.Password,
		})
		cancel()

		if err != nil {
			r.logger.Error(ctx, "Seed create failed", "email", su.Email, "error", err.Error())
			continue
		}
		if resp.Error != "" {
			r.logger.Warn(ctx, "Seed create rejected", "email", su.Email, "error", resp.Error)
			continue
		}

		r.logger.Info(ctx, "Seed user created", "email", su.Email, "userId", resp.UserId)
		created++
	}
	return created
}

func (r *SeedRunner) listPage(ctx context.Context, offset, limit int32) {
	cctx, cancel := r.call(ctx)
	defer cancel()

	resp, err := r.client.GetUsersList(cctx, &pb.GetUsersListRequest{Offset: offset, Limit: limit})
	if err != nil {
		r.logger.Error(ctx, "Seed list failed", "error", err.Error())
		return
	}
	if resp.Error != "" {
		r.logger.Warn(ctx, "Seed list rejected", "error", resp.Error)
		return
	}

	r.logger.Info(ctx, "Seed list page",
		"offset", resp.Offset, "limit", resp.Limit, "total", resp.Total, "returned", len(resp.Users))
}

func (r *SeedRunner) tryDuplicate(ctx context.Context, email string) {
	cctx, cancel := r.call(ctx)
	defer cancel()

	resp, err := r.client.CreateUser(cctx, &pb.CreateUserRequest{
		FirstName: "Duplicate",
		LastName:  "Test",
		Company:   "Test Company",
		Email:     email,
		Password:  "password123",
	})
	if err != nil {
		r.logger.Error(ctx, "Seed duplicate check failed", "error", err.Error())
		return
	}

	if resp.Error != "" {
		r.logger.Info(ctx, "Seed duplicate rejected as expected", "email", email, "error", resp.Error)
	} else {
		r.logger.Warn(ctx, "Seed duplicate unexpectedly created", "email", email, "userId", resp.UserId)
	}
}

func (r *SeedRunner) tryLogin(ctx context.Context, su seedUser) {
	cctx, cancel := r.call(ctx)
	defer cancel()

	resp, err := r.client.LoginUser(cctx, &pb.LoginUserRequest{Email: su.Email, Password: su.Password})
	if err != nil {
		r.logger.Error(ctx, "Seed login failed", "error", err.Error())
		return
	}
	if resp.Error != "" {
		r.logger.Warn(ctx, "Seed login rejected", "email", su.Email, "error", resp.Error)
		return
	}

	r.logger.Info(ctx, "Seed login succeeded", "email", su.Email)
}
