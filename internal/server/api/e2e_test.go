package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/crmdash/internal/airtable"
	"github.com/dmitrijs2005/crmdash/internal/logging"
	"github.com/dmitrijs2005/crmdash/internal/server/details"
	"github.com/dmitrijs2005/crmdash/internal/server/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAirtable is an in-memory stand-in for the Airtable REST API that
// understands the equality formulas produced by the airtable package.
type fakeAirtable struct {
	mu     sync.Mutex
	seq    int
	tables map[string][]airtable.Record
}

var condRe = regexp.MustCompile(`\{(\w+)\}='((?:[^'\\]|\\.)*)'`)

func unescapeLiteral(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func matches(rec airtable.Record, formula string) bool {
	for _, m := range condRe.FindAllStringSubmatch(formula, -1) {
		if rec.Fields.String(m[1]) != unescapeLiteral(m[2]) {
			return false
		}
	}
	return true
}

func (f *fakeAirtable) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/v0/"), "/")
	if len(parts) != 2 || parts[0] != "appTEST" || r.Header.Get("Authorization") != "Bearer patTEST" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"AUTHENTICATION_REQUIRED"}`)
		return
	}
	table := parts[1]

	var in struct {
		Records []airtable.Record `json:"records"`
	}
	if r.Method != http.MethodGet {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
	}

	var out []airtable.Record
	switch r.Method {
	case http.MethodGet:
		formula := r.URL.Query().Get("filterByFormula")
		for _, rec := range f.tables[table] {
			if matches(rec, formula) {
				out = append(out, rec)
			}
		}
		if r.URL.Query().Get("maxRecords") == "1" && len(out) > 1 {
			out = out[:1]
		}
	case http.MethodPost:
		for _, rec := range in.Records {
			f.seq++
			rec.ID = fmt.Sprintf("rec%03d", f.seq)
			rec.CreatedTime = "2024-05-01T10:00:00.000Z"
			f.tables[table] = append(f.tables[table], rec)
			out = append(out, rec)
		}
	case http.MethodPatch:
		for _, patch := range in.Records {
			for i, rec := range f.tables[table] {
				if rec.ID == patch.ID {
					for k, v := range patch.Fields {
						rec.Fields[k] = v
					}
					f.tables[table][i] = rec
					out = append(out, rec)
				}
			}
		}
	}

	// Airtable leaves empty cells out of responses.
	for i := range out {
		trimmed := airtable.Fields{}
		for k, v := range out[i].Fields {
			if v != "" {
				trimmed[k] = v
			}
		}
		out[i].Fields = trimmed
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"records": out})
}

func (f *fakeAirtable) rows(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[table])
}

func newStack(t *testing.T) (*httptest.Server, *fakeAirtable) {
	t.Helper()

	fake := &fakeAirtable{tables: map[string][]airtable.Record{
		"Users": {
			{ID: "usr1", Fields: airtable.Fields{"Email": "a@x.com", "Password": "pw", "Name": "Ann"}},
			{ID: "usr2", Fields: airtable.Fields{"Email": "o'neil@x.com", "Password": `p\w'`}},
		},
	}}
	remote := httptest.NewServer(fake)
	t.Cleanup(remote.Close)

	client := airtable.NewClient(airtable.Config{Token: "patTEST", BaseID: "appTEST", BaseURL: remote.URL + "/v0"}, logging.Nop{})
	us := users.NewService(users.NewAirtableRepository(client, "Users"))
	ds := details.NewService(details.NewAirtableRepository(client, "Details"))

	s, err := NewHTTPServer("127.0.0.1:0", logging.Nop{}, us, ds, http.NotFoundHandler(), 4096)
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, fake
}

func postJSON(t *testing.T, url, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func getJSON(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestE2E_Login(t *testing.T) {
	ts, _ := newStack(t)

	code, out := postJSON(t, ts.URL+"/api/login", `{"email":"a@x.com","password":"pw"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"message": "Login successful.", "email": "a@x.com", "name": "Ann"}, out)

	code, out = postJSON(t, ts.URL+"/api/login", `{"email":"o'neil@x.com","password":"p\\w'"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "", out["name"])

	_, wrongPassword := postJSON(t, ts.URL+"/api/login", `{"email":"a@x.com","password":"nope"}`)
	code, unknownEmail := postJSON(t, ts.URL+"/api/login", `{"email":"zed@x.com","password":"pw"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestE2E_LoginRejectsFormulaInjection(t *testing.T) {
	ts, _ := newStack(t)

	code, out := postJSON(t, ts.URL+"/api/login", `{"email":"a@x.com","password":"x' OR '1'='1"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials.", out["message"])

	code, _ = postJSON(t, ts.URL+"/api/login", `{"email":"a@x.com","password":"\\' , TRUE()) , AND('"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestE2E_DetailsLifecycle(t *testing.T) {
	ts, fake := newStack(t)
	detailsURL := ts.URL + "/api/details"

	code, out := getJSON(t, detailsURL+"?email=a%40x.com")
	assert.Equal(t, http.StatusOK, code)
	assert.Nil(t, out["record"])
	assert.Contains(t, out, "record")

	code, out = postJSON(t, detailsURL, `{"email":"a@x.com","company":"Acme"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Details created.", out["message"])
	assert.Equal(t,
		map[string]any{"Email": "a@x.com", "Company": "Acme", "Phone": "", "Notes": ""},
		out["record"].(map[string]any)["fields"])

	code, out = postJSON(t, detailsURL, `{"email":"a@x.com","company":"Acme2"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Details updated.", out["message"])
	assert.Equal(t, "Acme2", out["record"].(map[string]any)["fields"].(map[string]any)["Company"])

	code, out = postJSON(t, detailsURL, `{"email":"a@x.com","company":"Acme2","phone":"555","notes":"vip"}`)
	require.Equal(t, http.StatusOK, code)

	code, out = getJSON(t, detailsURL+"?email=a%40x.com")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t,
		map[string]any{"Email": "a@x.com", "Company": "Acme2", "Phone": "555", "Notes": "vip"},
		out["record"].(map[string]any)["fields"])

	assert.Equal(t, 1, fake.rows("Details"))
}

func TestE2E_MisconfiguredRemote(t *testing.T) {
	client := airtable.NewClient(airtable.Config{}, logging.Nop{})
	us := users.NewService(users.NewAirtableRepository(client, "Users"))
	ds := details.NewService(details.NewAirtableRepository(client, "Details"))
	s, err := NewHTTPServer("127.0.0.1:0", logging.Nop{}, us, ds, http.NotFoundHandler(), 4096)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	code, out := postJSON(t, ts.URL+"/api/login", `{"email":"a@x.com","password":"pw"}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Missing AIRTABLE_TOKEN or AIRTABLE_BASE_ID.", out["message"])

	code, out = getJSON(t, ts.URL+"/api/details?email=a@x.com")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Missing AIRTABLE_TOKEN or AIRTABLE_BASE_ID.", out["message"])
}

func TestE2E_OversizedBodyDropsConnection(t *testing.T) {
	ts, fake := newStack(t)

	for _, path := range []string{"/api/login", "/api/details"} {
		t.Run(path, func(t *testing.T) {
			big := `{"email":"a@x.com","notes":"` + strings.Repeat("n", 8192) + `"}`

			client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
			resp, err := client.Post(ts.URL+path, "application/json", bytes.NewReader([]byte(big)))
			if err == nil {
				resp.Body.Close()
			}
			require.Error(t, err)
		})
	}

	assert.Zero(t, fake.rows("Details"))
}
