// Package common defines sentinel errors shared by the server and the CLI
// client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation error")

	// Transport-level errors.
	ErrInvalidJSON     = errors.New("invalid JSON body")
	ErrRequestTooLarge = errors.New("request too large")
	ErrNotLoggedIn     = errors.New("not logged in")
)
