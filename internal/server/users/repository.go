package users

import "context"

// Repository is the narrow capability surface the directory service
// needs from the record store. Lookups that match nothing return
// common.ErrNotFound; transport failures wrap common.ErrStoreUnavailable.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, userID string) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)
	Insert(ctx context.Context, user *User) error
}
