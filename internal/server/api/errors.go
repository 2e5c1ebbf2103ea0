package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/crmdash/internal/common"
)

// Messages shown to the browser.
const (
	msgLoginFieldsRequired = "Email and password are required."
	msgInvalidCredentials  = "Invalid credentials."
	msgEmailQueryRequired  = "Email query parameter is required."
	msgEmailRequired       = "Email is required."
	msgInvalidJSON         = "Invalid JSON body"
	msgRouteNotFound       = "API route not found."
	msgInternal            = "Internal server error."
)

// httpError carries a status and the message returned to the client.
type httpError struct {
	status  int
	message string
}

func (e *httpError) Error() string {
	return e.message
}

func badRequest(msg string) error {
	return &httpError{status: http.StatusBadRequest, message: msg}
}

type messageResponse struct {
	Message string `json:"message"`
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle is the single place where handler errors turn into responses.
func (s *HTTPServer) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		if errors.Is(err, common.ErrRequestTooLarge) {
			s.logger.Warn(r.Context(), "request body too large, dropping connection",
				"request_id", requestID(r.Context()), "path", r.URL.Path)
			dropConnection(w)
			return
		}

		status, msg := classify(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error(r.Context(), "request failed",
				"request_id", requestID(r.Context()), "path", r.URL.Path, "error", err)
		}
		writeJSON(w, status, messageResponse{Message: msg})
	}
}

func classify(err error) (int, string) {
	var he *httpError
	switch {
	case errors.As(err, &he):
		return he.status, he.message
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrInvalidJSON):
		return http.StatusInternalServerError, msgInvalidJSON
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"message":"` + msgInternal + `"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// dropConnection closes the client connection without writing a response.
// Where hijacking is unsupported (HTTP/2, recorders) it answers 413 and asks
// for the connection to be closed.
func dropConnection(w http.ResponseWriter) {
	conn, _, err := http.NewResponseController(w).Hijack()
	if err != nil {
		w.Header().Set("Connection", "close")
		writeJSON(w, http.StatusRequestEntityTooLarge, messageResponse{Message: "Request too large"})
		return
	}
	_ = conn.Close()
}
