package users

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/crmdash/internal/airtable"
	"github.com/dmitrijs2005/crmdash/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTable struct {
	gotTable string
	gotOpts  airtable.ListOptions
	records  []airtable.Record
	err      error
}

func (f *fakeTable) List(ctx context.Context, table string, opts airtable.ListOptions) ([]airtable.Record, error) {
	f.gotTable = table
	f.gotOpts = opts
	return f.records, f.err
}

func TestAirtableRepository_FindByCredentials(t *testing.T) {
	table := &fakeTable{records: []airtable.Record{
		{ID: "rec1", Fields: airtable.Fields{"Email": "a@x.com", "Name": "Ann"}},
	}}
	repo := NewAirtableRepository(table, "Users")

	u, err := repo.FindByCredentials(context.Background(), "a@x.com", "p'w")
	require.NoError(t, err)

	assert.Equal(t, "Users", table.gotTable)
	assert.Equal(t, 1, table.gotOpts.MaxRecords)
	assert.Equal(t, airtable.Formula(`AND({Email}='a@x.com', {Password}='p\'w')`), table.gotOpts.Formula)
	assert.Equal(t, &User{ID: "rec1", Email: "a@x.com", Name: "Ann"}, u)
}

func TestAirtableRepository_NoMatch(t *testing.T) {
	repo := NewAirtableRepository(&fakeTable{}, "Users")

	_, err := repo.FindByCredentials(context.Background(), "a@x.com", "pw")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAirtableRepository_ClientError(t *testing.T) {
	repo := NewAirtableRepository(&fakeTable{err: airtable.ErrMissingConfig}, "Users")

	_, err := repo.FindByCredentials(context.Background(), "a@x.com", "pw")
	require.ErrorIs(t, err, airtable.ErrMissingConfig)
	assert.False(t, errors.Is(err, common.ErrInvalidCredentials))
}
