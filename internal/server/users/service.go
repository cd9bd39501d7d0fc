// Package users implements the user directory: record lifecycle, email
// uniqueness, pagination policy, and credential checks against the
// record store.
package users

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/avoronin/userdir/internal/common"
	"github.com/avoronin/userdir/internal/server/auth"
	"github.com/avoronin/userdir/internal/server/config"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// allowedLimits is the page-size allow-list for GetUsersList.
var allowedLimits = map[int]bool{5: true, 10: true, 25: true}

// maxPageSize caps the slice width even for allow-listed limits.
const maxPageSize = 25

// ListEntry is the projection of a record returned by GetUsersList.
type ListEntry struct {
	UserID string
	Email  string
}

// Page is one window of the email-ordered listing. Offset and Limit echo
// the request; Total is the record count before slicing.
type Page struct {
	Users  []ListEntry
	Total  int
	Offset int
	Limit  int
}

// Service is the user directory service. It holds no durable state of
// its own; the record store owns the data.
type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
	bcryptCost    int
}

// NewService constructs a Service backed by the given repository and
// server config.
func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.JWTSecret),
		tokenValidity: cfg.TokenValidityDuration,
		bcryptCost:    cfg.BcryptCost,
	}
}

// CreateUser registers a new record after checking email uniqueness,
// returning the generated userId. The existence check and the insert are
// not atomic: two concurrent creates with the same email can both pass
// the check. The store offers no conditional insert, so the race stands.
func (s *Service) CreateUser(ctx context.Context, firstName, lastName, company, email, password string) (string, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return "", common.ErrDuplicateEmail
	}
	if !errors.Is(err, common.ErrNotFound) {
		return "", fmt.Errorf("error checking email: %w", err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		UserID:    uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Company:   company,
		Email:     email,
		Password:  hash,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return "", fmt.Errorf("error inserting user: %w", err)
	}

	return user.UserID, nil
}

// GetUser looks up a record by id. The password field is cleared before
// the record is returned.
func (s *Service) GetUser(ctx context.Context, userID string) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	user.Password = ""
	return user, nil
}

// GetUsersList returns the window [offset, offset+min(limit, 25)) of all
// records ordered by email, collated locale-aware. Limits outside the
// allow-list fail with ErrInvalidLimit; offsets beyond the end yield an
// empty page with the true total.
func (s *Service) GetUsersList(ctx context.Context, offset, limit int) (*Page, error) {
	page := &Page{Users: []ListEntry{}, Offset: offset, Limit: limit}

	if !allowedLimits[limit] {
		return page, common.ErrInvalidLimit
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return page, fmt.Errorf("error listing users: %w", err)
	}

	// Collators are not safe for concurrent use, so each call gets its own.
	c := collate.New(language.Und)
	sort.SliceStable(all, func(i, j int) bool {
		return c.CompareString(all[i].Email, all[j].Email) < 0
	})

	page.Total = len(all)

	size := limit
	if size > maxPageSize {
		size = maxPageSize
	}
	start := offset
	if start < 0 {
		start = 0
	}
	if start > len(all) {
		start = len(all)
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}

	for _, u := range all[start:end] {
		page.Users = append(page.Users, ListEntry{UserID: u.UserID, Email: u.Email})
	}

	return page, nil
}

// LoginUser verifies credentials and issues a signed token embedding
// {userId, email}. A missing record and a wrong password both fail with
// ErrInvalidCredentials so callers cannot probe for registered emails.
func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.UserID, user.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return token, nil
}
