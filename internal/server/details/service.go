package details

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/crmdash/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the record stored for email, or nil when there is none yet.
func (s *Service) Get(ctx context.Context, email string) (*Record, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrValidation)
	}

	rec, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// Upsert writes in to the record for in.Email, creating the record if the
// email has none. All four columns are always written.
//
// The lookup and the write are separate remote calls. Two concurrent first
// saves for the same email can both miss and both create.
func (s *Service) Upsert(ctx context.Context, in Details) (*Record, Outcome, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, 0, fmt.Errorf("%w: email is required", common.ErrValidation)
	}

	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, 0, err
	}

	if existing != nil {
		rec, err := s.repo.Update(ctx, existing.ID, in)
		if err != nil {
			return nil, 0, err
		}
		return rec, Updated, nil
	}

	rec, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, 0, err
	}
	return rec, Created, nil
}
