package details

import (
	"context"

	"github.com/dmitrijs2005/crmdash/internal/airtable"
	"github.com/dmitrijs2005/crmdash/internal/common"
)

// TableClient is the part of airtable.Client the repository needs.
type TableClient interface {
	List(ctx context.Context, table string, opts airtable.ListOptions) ([]airtable.Record, error)
	Create(ctx context.Context, table string, fields airtable.Fields) (*airtable.Record, error)
	Update(ctx context.Context, table, id string, fields airtable.Fields) (*airtable.Record, error)
}

type AirtableRepository struct {
	client TableClient
	table  string
}

func NewAirtableRepository(client TableClient, table string) *AirtableRepository {
	return &AirtableRepository{client: client, table: table}
}

func (r *AirtableRepository) FindByEmail(ctx context.Context, email string) (*Record, error) {
	recs, err := r.client.List(ctx, r.table, airtable.ListOptions{
		Formula:    airtable.Eq(FieldEmail, email),
		MaxRecords: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, common.ErrNotFound
	}
	return fromAirtable(&recs[0]), nil
}

func (r *AirtableRepository) Create(ctx context.Context, d Details) (*Record, error) {
	rec, err := r.client.Create(ctx, r.table, toFields(d))
	if err != nil {
		return nil, err
	}
	return fromAirtable(rec), nil
}

func (r *AirtableRepository) Update(ctx context.Context, id string, d Details) (*Record, error) {
	rec, err := r.client.Update(ctx, r.table, id, toFields(d))
	if err != nil {
		return nil, err
	}
	return fromAirtable(rec), nil
}

func toFields(d Details) airtable.Fields {
	return airtable.Fields{
		FieldEmail:   d.Email,
		FieldCompany: d.Company,
		FieldPhone:   d.Phone,
		FieldNotes:   d.Notes,
	}
}

// fromAirtable tolerates missing columns; Airtable leaves empty cells out.
func fromAirtable(rec *airtable.Record) *Record {
	return &Record{
		ID:          rec.ID,
		CreatedTime: rec.CreatedTime,
		Details: Details{
			Email:   rec.Fields.String(FieldEmail),
			Company: rec.Fields.String(FieldCompany),
			Phone:   rec.Fields.String(FieldPhone),
			Notes:   rec.Fields.String(FieldNotes),
		},
	}
}
