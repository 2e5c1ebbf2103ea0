package users

import (
	"context"

	"github.com/dmitrijs2005/crmdash/internal/airtable"
	"github.com/dmitrijs2005/crmdash/internal/common"
)

// TableClient is the part of airtable.Client the repository needs.
type TableClient interface {
	List(ctx context.Context, table string, opts airtable.ListOptions) ([]airtable.Record, error)
}

type AirtableRepository struct {
	client TableClient
	table  string
}

func NewAirtableRepository(client TableClient, table string) *AirtableRepository {
	return &AirtableRepository{client: client, table: table}
}

// FindByCredentials asks Airtable for at most one row matching both email
// and password. The comparison happens remotely and in plaintext.
func (r *AirtableRepository) FindByCredentials(ctx context.Context, email, password string) (*User, error) {
	recs, err := r.client.List(ctx, r.table, airtable.ListOptions{
		Formula:    airtable.And(airtable.Eq(FieldEmail, email), airtable.Eq(FieldPassword, password)),
		MaxRecords: 1,
	})
	if err != nil {
		return nil, err
	}

	if len(recs) == 0 {
		return nil, common.ErrInvalidCredentials
	}

	rec := recs[0]
	return &User{
		ID:    rec.ID,
		Email: rec.Fields.String(FieldEmail),
		Name:  rec.Fields.String(FieldName),
	}, nil
}
