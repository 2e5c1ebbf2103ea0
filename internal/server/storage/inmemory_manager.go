package storage

import (
	"github.com/dmitrijs2005/crmdash/internal/server/details"
	"github.com/dmitrijs2005/crmdash/internal/server/users"
)

// DemoAccount is the only user known to the in-memory store.
var DemoAccount = users.Account{Email: "demo@example.com", Password: "demo", Name: "Demo User"}

type InMemoryRepositoryManager struct {
	users   *users.MemoryRepository
	details *details.MemoryRepository
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) Details() details.Repository {
	return m.details
}

// NewInMemoryRepositoryManager seeds the user store with accounts, or with
// DemoAccount when none are given.
func NewInMemoryRepositoryManager(accounts ...users.Account) RepositoryManager {
	if len(accounts) == 0 {
		accounts = []users.Account{DemoAccount}
	}
	return InMemoryRepositoryManager{
		users:   users.NewMemoryRepository(accounts...),
		details: details.NewMemoryRepository(),
	}
}
