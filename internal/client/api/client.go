// Package api is the CLI's client for the crmdash backend JSON API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/crmdash/internal/client/session"
	"github.com/dmitrijs2005/crmdash/internal/netx"
)

// Details are the editable fields of a company details record.
type Details struct {
	Company string
	Phone   string
	Notes   string
}

type Fields struct {
	Email   string `json:"Email"`
	Company string `json:"Company"`
	Phone   string `json:"Phone"`
	Notes   string `json:"Notes"`
}

type Record struct {
	ID          string `json:"id"`
	CreatedTime string `json:"createdTime,omitempty"`
	Fields      Fields `json:"fields"`
}

// Error is a non-2xx answer from the backend.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Login checks the credentials and returns the session to remember.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Session, error) {
	in := map[string]string{"email": email, "password": password}
	var out struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", in, &out); err != nil {
		return nil, err
	}
	return &session.Session{Email: out.Email, Name: out.Name}, nil
}

// GetDetails returns nil when the user has no record yet.
func (c *Client) GetDetails(ctx context.Context, s *session.Session) (*Record, error) {
	var out struct {
		Record *Record `json:"record"`
	}
	path := "/api/details?" + url.Values{"email": {s.Email}}.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Record, nil
}

// SaveDetails creates or replaces the user's record and returns it together
// with the backend's message.
func (c *Client) SaveDetails(ctx context.Context, s *session.Session, d Details) (*Record, string, error) {
	in := map[string]string{
		"email":   s.Email,
		"company": d.Company,
		"phone":   d.Phone,
		"notes":   d.Notes,
	}
	var out struct {
		Message string  `json:"message"`
		Record  *Record `json:"record"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/details", in, &out); err != nil {
		return nil, "", err
	}
	return out.Record, out.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	req, err := netx.NewJSONRequest(ctx, method, c.baseURL+path, in)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !netx.IsSuccess(resp.StatusCode) {
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(netx.ReadErrorBody(resp))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// errorMessage extracts the "message" field of a JSON error body, or returns
// the raw text.
func errorMessage(body string) string {
	var msg struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &msg); err == nil && msg.Message != "" {
		return msg.Message
	}
	return strings.TrimSpace(body)
}
