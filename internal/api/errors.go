package api

import "errors"

// Sentinel errors exposed by the gateway. Callers match them with errors.Is.
var (
	// ErrNetwork means the request never reached the backend.
	ErrNetwork = errors.New("network error")

	// ErrServer means the backend answered with a failure status or an
	// unreadable body.
	ErrServer = errors.New("server error")

	// ErrValidation means the backend rejected field content. The wrapped
	// message carries the backend's explanation when one was provided.
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized means the session token is missing, expired or wrong.
	ErrUnauthorized = errors.New("unauthorized")
)
