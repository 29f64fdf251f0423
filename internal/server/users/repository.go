package users

import "context"

// Repository persists credential records.
//
// Create returns common.ErrConflict when the username is already taken;
// GetByUsername returns common.ErrNotFound for unknown users.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
