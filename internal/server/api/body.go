package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/crmdash/internal/common"
)

// decodeBody reads at most s.maxBodyBytes of the request body into dst. An
// empty body leaves dst untouched.
func (s *HTTPServer) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return common.ErrRequestTooLarge
		}
		return fmt.Errorf("reading request body: %w", err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidJSON, err)
	}
	return nil
}

// looseString decodes any JSON scalar into a string field. Numbers and true
// keep their JSON text; false, 0 and null decode as "" and so count as
// missing. Objects and arrays are rejected.
type looseString string

func (ls *looseString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*ls = ""
	case string:
		*ls = looseString(t)
	case bool:
		*ls = ""
		if t {
			*ls = "true"
		}
	case float64:
		*ls = ""
		if t != 0 {
			*ls = looseString(bytes.TrimSpace(b))
		}
	default:
		return fmt.Errorf("expected a scalar, got %s", b)
	}
	return nil
}
