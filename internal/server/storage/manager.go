// Package storage selects the repositories backing the server's services.
package storage

import (
	"github.com/dmitrijs2005/crmdash/internal/server/details"
	"github.com/dmitrijs2005/crmdash/internal/server/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Details() details.Repository
}
