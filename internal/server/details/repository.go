package details

import "context"

// Repository persists details records. Nothing enforces one record per
// email; FindByEmail returns the first match.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Record, error)
	Create(ctx context.Context, d Details) (*Record, error)
	Update(ctx context.Context, id string, d Details) (*Record, error)
}
