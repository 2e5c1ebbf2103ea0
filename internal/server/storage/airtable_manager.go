package storage

import (
	"github.com/dmitrijs2005/crmdash/internal/airtable"
	"github.com/dmitrijs2005/crmdash/internal/server/details"
	"github.com/dmitrijs2005/crmdash/internal/server/users"
)

// Tables names the remote tables used by the Airtable-backed repositories.
type Tables struct {
	Users   string
	Details string
}

type AirtableRepositoryManager struct {
	users   users.Repository
	details details.Repository
}

func (m *AirtableRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *AirtableRepositoryManager) Details() details.Repository {
	return m.details
}

func NewAirtableRepositoryManager(client *airtable.Client, t Tables) RepositoryManager {
	return &AirtableRepositoryManager{
		users:   users.NewAirtableRepository(client, t.Users),
		details: details.NewAirtableRepository(client, t.Details),
	}
}
