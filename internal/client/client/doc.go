// Package client talks to the storefront API over HTTP+JSON and bootstraps
// the client-local SQLite store.
//
// Failures map to sentinel errors (ErrUnavailable, ErrUnauthorized,
// ErrNotFound) that callers match with errors.Is. Every call takes a
// context and the underlying http.Client carries a timeout.
package client
