package airtable

import (
	"errors"
	"fmt"
)

// ErrMissingConfig is returned by every call when the token or base id is
// not configured. Its text is shown to browser users as is.
var ErrMissingConfig = errors.New("Missing AIRTABLE_TOKEN or AIRTABLE_BASE_ID.")

// ErrEmptyResponse means a write succeeded but echoed no records back.
var ErrEmptyResponse = errors.New("airtable returned no records")

// APIError is a non-2xx answer from the Airtable API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Airtable API error (%d): %s", e.StatusCode, e.Body)
}
