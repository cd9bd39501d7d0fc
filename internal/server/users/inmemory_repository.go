package users

import (
	"context"
	"sync"

	"github.com/avoronin/userdir/internal/common"
)

// InMemoryRepository is a map-backed Repository used in tests and for
// running the server without an external store.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[string]*User)}
}

func (r *InMemoryRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.records {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) FindByID(ctx context.Context, userID string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.records[userID]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*User, 0, len(r.records))
	for _, u := range r.records {
		copied := *u
		all = append(all, &copied)
	}
	return all, nil
}

func (r *InMemoryRepository) Insert(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.records[user.UserID] = &copied
	return nil
}
