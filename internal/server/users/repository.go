package users

import (
	"context"
)

type Repository interface {
	// FindByCredentials returns the user whose email and password both
	// match, or common.ErrInvalidCredentials.
	FindByCredentials(ctx context.Context, email, password string) (*User, error)
}
