package auth

import (
	"context"

	"eventum/internal/core/id"
)

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID id.ID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Exists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*User, error)
}
