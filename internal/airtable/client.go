// Package airtable is a small client for the Airtable REST API covering
// the calls the CRM dashboard needs: filtered listing, record creation and
// partial updates.
package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/crmdash/internal/logging"
	"github.com/dmitrijs2005/crmdash/internal/netx"
)

// Config identifies the Airtable base and the credential used to reach it.
type Config struct {
	Token   string
	BaseID  string
	BaseURL string
}

// ListOptions narrows a List call. Zero values are left out of the query.
type ListOptions struct {
	Formula    Formula
	MaxRecords int
}

type Client struct {
	token      string
	baseID     string
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// NewClient creates a client. Missing credentials are not an error here;
// they surface as ErrMissingConfig on the first call.
func NewClient(cfg Config, l logging.Logger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.airtable.com/v0"
	}
	return &Client{
		token:      cfg.Token,
		baseID:     cfg.BaseID,
		baseURL:    base,
		httpClient: &http.Client{},
		logger:     l.With("module", "airtable"),
	}
}

// List returns the rows of table matching opts.
func (c *Client) List(ctx context.Context, table string, opts ListOptions) ([]Record, error) {
	q := url.Values{}
	if opts.Formula != "" {
		q.Set("filterByFormula", string(opts.Formula))
	}
	if opts.MaxRecords > 0 {
		q.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
	}

	var out recordList
	if err := c.do(ctx, http.MethodGet, table, q, nil, &out); err != nil {
		return nil, err
	}
	return out.Records, nil
}

// Create inserts one row and returns it as stored.
func (c *Client) Create(ctx context.Context, table string, fields Fields) (*Record, error) {
	in := recordList{Records: []Record{{Fields: fields}}}
	return c.write(ctx, http.MethodPost, table, in)
}

// Update replaces the given fields of row id, leaving other fields alone.
func (c *Client) Update(ctx context.Context, table, id string, fields Fields) (*Record, error) {
	in := recordList{Records: []Record{{ID: id, Fields: fields}}}
	return c.write(ctx, http.MethodPatch, table, in)
}

func (c *Client) write(ctx context.Context, method, table string, in recordList) (*Record, error) {
	var out recordList
	if err := c.do(ctx, method, table, nil, in, &out); err != nil {
		return nil, err
	}
	if len(out.Records) == 0 {
		return nil, ErrEmptyResponse
	}
	return &out.Records[0], nil
}

func (c *Client) endpoint(table string, q url.Values) string {
	u := c.baseURL + "/" + url.PathEscape(c.baseID) + "/" + url.PathEscape(table)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, method, table string, q url.Values, in, out any) error {
	if c.token == "" || c.baseID == "" {
		return ErrMissingConfig
	}

	req, err := netx.NewJSONRequest(ctx, method, c.endpoint(table, q), in)
	if err != nil {
		return fmt.Errorf("airtable: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("airtable request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "airtable call",
		"method", method, "table", table, "status", resp.StatusCode, "elapsed", time.Since(start))

	if !netx.IsSuccess(resp.StatusCode) {
		return &APIError{StatusCode: resp.StatusCode, Body: netx.ReadErrorBody(resp)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding airtable response: %w", err)
	}
	return nil
}
