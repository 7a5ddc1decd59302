// Package api is the remote data gateway for the BRI-Finder backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     backend surface the admin tool consumes: auth/login, auth/register,
//     auth/profile, location CRUD with multipart image upload, and comment
//     list/delete.
//  2. A concrete HTTP+JSON implementation (see HTTPClient) that attaches the
//     session token as a bearer credential and maps transport and HTTP
//     failures to sentinel errors.
//
// # Error Handling
//
// Failure conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrNetwork, ErrServer, ErrValidation, ErrUnauthorized.
// A failed call has no side effects the caller needs to undo; collection
// state is only ever replaced after a successful list.
//
// All operations accept context.Context and honor cancellation/timeouts.
package api
