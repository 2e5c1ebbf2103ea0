package api

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/crmdash/internal/server/details"
)

type loginRequest struct {
	Email    looseString `json:"email"`
	Password looseString `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

type upsertRequest struct {
	Email   looseString `json:"email"`
	Company looseString `json:"company"`
	Phone   looseString `json:"phone"`
	Notes   looseString `json:"notes"`
}

type recordFields struct {
	Email   string `json:"Email"`
	Company string `json:"Company"`
	Phone   string `json:"Phone"`
	Notes   string `json:"Notes"`
}

type recordJSON struct {
	ID          string       `json:"id"`
	CreatedTime string       `json:"createdTime,omitempty"`
	Fields      recordFields `json:"fields"`
}

type detailsResponse struct {
	Record *recordJSON `json:"record"`
}

type upsertResponse struct {
	Message string      `json:"message"`
	Record  *recordJSON `json:"record"`
}

// blank reports a missing value. Whitespace-only input counts as missing.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func toJSON(rec *details.Record) *recordJSON {
	if rec == nil {
		return nil
	}
	return &recordJSON{
		ID:          rec.ID,
		CreatedTime: rec.CreatedTime,
		Fields: recordFields{
			Email:   rec.Email,
			Company: rec.Company,
			Phone:   rec.Phone,
			Notes:   rec.Notes,
		},
	}
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) error {
	var req loginRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		return err
	}
	if blank(string(req.Email)) || req.Password == "" {
		return badRequest(msgLoginFieldsRequired)
	}

	user, err := s.users.Login(r.Context(), string(req.Email), string(req.Password))
	if err != nil {
		return err
	}

	s.logger.Info(r.Context(), "login succeeded", "request_id", requestID(r.Context()))
	writeJSON(w, http.StatusOK, loginResponse{
		Message: "Login successful.",
		Email:   user.Email,
		Name:    user.Name,
	})
	return nil
}

func (s *HTTPServer) getDetails(w http.ResponseWriter, r *http.Request) error {
	email := r.URL.Query().Get("email")
	if blank(email) {
		return badRequest(msgEmailQueryRequired)
	}

	rec, err := s.details.Get(r.Context(), email)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, detailsResponse{Record: toJSON(rec)})
	return nil
}

func (s *HTTPServer) upsertDetails(w http.ResponseWriter, r *http.Request) error {
	var req upsertRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		return err
	}
	if blank(string(req.Email)) {
		return badRequest(msgEmailRequired)
	}

	rec, outcome, err := s.details.Upsert(r.Context(), details.Details{
		Email:   string(req.Email),
		Company: string(req.Company),
		Phone:   string(req.Phone),
		Notes:   string(req.Notes),
	})
	if err != nil {
		return err
	}

	msg := "Details created."
	if outcome == details.Updated {
		msg = "Details updated."
	}

	s.logger.Info(r.Context(), "details saved",
		"request_id", requestID(r.Context()), "outcome", outcome.String())
	writeJSON(w, http.StatusOK, upsertResponse{Message: msg, Record: toJSON(rec)})
	return nil
}

func (s *HTTPServer) apiNotFound(w http.ResponseWriter, r *http.Request) error {
	return &httpError{status: http.StatusNotFound, message: msgRouteNotFound}
}
