// Package common contains shared constants and small helpers used across
// the admin client layers.
package common

// AuthHeaderName is the HTTP header used to carry the session token on
// outbound requests.
const AuthHeaderName = "Authorization"

// BearerPrefix is prepended to the session token in the auth header.
const BearerPrefix = "Bearer "
