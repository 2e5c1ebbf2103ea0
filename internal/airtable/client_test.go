package airtable

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/crmdash/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	path   string
	query  map[string][]string
	auth   string
	ctype  string
	body   []byte
}

func newFakeAirtable(t *testing.T, status int, response string) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.EscapedPath()
		got.query = r.URL.Query()
		got.auth = r.Header.Get("Authorization")
		got.ctype = r.Header.Get("Content-Type")
		got.body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(ts.Close)
	return ts, got
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{Token: "patTEST", BaseID: "appBASE", BaseURL: baseURL}, logging.Nop{})
}

func TestClient_List(t *testing.T) {
	ts, got := newFakeAirtable(t, http.StatusOK,
		`{"records":[{"id":"rec1","createdTime":"2024-01-01T00:00:00.000Z","fields":{"Email":"a@x.com","Name":"Ann"}}]}`)

	c := newTestClient(ts.URL + "/v0/")
	recs, err := c.List(context.Background(), "My Users", ListOptions{
		Formula:    Eq("Email", "a@x.com"),
		MaxRecords: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/v0/appBASE/My%20Users", got.path)
	assert.Equal(t, []string{`{Email}='a@x.com'`}, got.query["filterByFormula"])
	assert.Equal(t, []string{"1"}, got.query["maxRecords"])
	assert.Equal(t, "Bearer patTEST", got.auth)
	assert.Equal(t, "application/json", got.ctype)
	assert.Empty(t, got.body)

	require.Len(t, recs, 1)
	assert.Equal(t, "rec1", recs[0].ID)
	assert.Equal(t, "Ann", recs[0].Fields.String("Name"))
	assert.Equal(t, "", recs[0].Fields.String("Missing"))
}

func TestClient_List_NoOptions(t *testing.T) {
	ts, got := newFakeAirtable(t, http.StatusOK, `{"records":[]}`)

	recs, err := newTestClient(ts.URL).List(context.Background(), "Details", ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.NotContains(t, got.query, "filterByFormula")
	assert.NotContains(t, got.query, "maxRecords")
}

func TestClient_Create(t *testing.T) {
	ts, got := newFakeAirtable(t, http.StatusOK,
		`{"records":[{"id":"recNew","fields":{"Email":"a@x.com","Company":"Acme"}}]}`)

	rec, err := newTestClient(ts.URL).Create(context.Background(), "Details",
		Fields{"Email": "a@x.com", "Company": "Acme"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.JSONEq(t, `{"records":[{"fields":{"Email":"a@x.com","Company":"Acme"}}]}`, string(got.body))
	assert.Equal(t, "recNew", rec.ID)
	assert.Equal(t, "Acme", rec.Fields.String("Company"))
}

func TestClient_Update(t *testing.T) {
	ts, got := newFakeAirtable(t, http.StatusOK,
		`{"records":[{"id":"rec1","fields":{"Email":"a@x.com","Company":"Acme2"}}]}`)

	rec, err := newTestClient(ts.URL).Update(context.Background(), "Details", "rec1",
		Fields{"Company": "Acme2"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, got.method)

	var body recordList
	require.NoError(t, json.Unmarshal(got.body, &body))
	require.Len(t, body.Records, 1)
	assert.Equal(t, "rec1", body.Records[0].ID)
	assert.Equal(t, "Acme2", body.Records[0].Fields.String("Company"))
	assert.Equal(t, "Acme2", rec.Fields.String("Company"))
}

func TestClient_WriteWithEmptyResponse(t *testing.T) {
	ts, _ := newFakeAirtable(t, http.StatusOK, `{"records":[]}`)

	_, err := newTestClient(ts.URL).Create(context.Background(), "Details", Fields{})
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestClient_APIError(t *testing.T) {
	ts, _ := newFakeAirtable(t, http.StatusUnauthorized, `{"error":"AUTHENTICATION_REQUIRED"}`)

	_, err := newTestClient(ts.URL).List(context.Background(), "Users", ListOptions{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, `{"error":"AUTHENTICATION_REQUIRED"}`, apiErr.Body)
	assert.Equal(t, `Airtable API error (401): {"error":"AUTHENTICATION_REQUIRED"}`, err.Error())
}

func TestClient_MalformedResponse(t *testing.T) {
	ts, _ := newFakeAirtable(t, http.StatusOK, `not json`)

	_, err := newTestClient(ts.URL).List(context.Background(), "Users", ListOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding airtable response")
}

func TestClient_MissingConfig(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer ts.Close()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"no token", Config{BaseID: "app", BaseURL: ts.URL}},
		{"no base", Config{Token: "pat", BaseURL: ts.URL}},
		{"nothing", Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.cfg, logging.Nop{})

			_, err := c.List(context.Background(), "Users", ListOptions{})
			require.ErrorIs(t, err, ErrMissingConfig)

			_, err = c.Create(context.Background(), "Details", Fields{})
			require.ErrorIs(t, err, ErrMissingConfig)

			_, err = c.Update(context.Background(), "Details", "rec1", Fields{})
			require.ErrorIs(t, err, ErrMissingConfig)
		})
	}

	assert.Zero(t, calls)
}

func TestClient_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := newTestClient(url).List(context.Background(), "Users", ListOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "airtable request failed")
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient(Config{Token: "t", BaseID: "app"}, logging.Nop{})
	assert.Equal(t, "https://api.airtable.com/v0/app/Users", c.endpoint("Users", nil))
}
