package details

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/crmdash/internal/common"
)

// MemoryRepository keeps records in process memory. Each call is atomic on
// its own; like the Airtable store, a find followed by a create is not.
type MemoryRepository struct {
	mu      sync.Mutex
	seq     int
	order   []string
	records map[string]Record
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[string]Record),
		now:     time.Now,
	}
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if rec := r.records[id]; rec.Email == email {
			return &rec, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) Create(ctx context.Context, d Details) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	rec := Record{
		ID:          fmt.Sprintf("rec%06d", r.seq),
		CreatedTime: r.now().UTC().Format(time.RFC3339),
		Details:     d,
	}
	r.records[rec.ID] = rec
	r.order = append(r.order, rec.ID)
	return &rec, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, d Details) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("record %s: %w", id, common.ErrNotFound)
	}
	rec.Details = d
	r.records[id] = rec
	return &rec, nil
}

// Len reports how many records are stored.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
