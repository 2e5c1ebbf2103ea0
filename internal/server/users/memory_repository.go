package users

import (
	"context"

	"github.com/dmitrijs2005/crmdash/internal/common"
)

// Account is a seeded login for MemoryRepository.
type Account struct {
	Email    string
	Password string
	Name     string
}

// MemoryRepository answers logins from a fixed account list. It backs the
// server's in-memory development mode.
type MemoryRepository struct {
	accounts []Account
}

func NewMemoryRepository(accounts ...Account) *MemoryRepository {
	return &MemoryRepository{accounts: accounts}
}

func (r *MemoryRepository) FindByCredentials(ctx context.Context, email, password string) (*User, error) {
	for _, a := range r.accounts {
		if a.Email == email && a.Password == password {
			return &User{Email: a.Email, Name: a.Name}, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}
