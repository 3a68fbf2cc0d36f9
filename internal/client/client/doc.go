// Package client contains the terminal client's building blocks.
//
// HTTPClient calls the Taskkeeper REST API and keeps the bearer token for
// protected routes. Failures are returned as *APIError for non-2xx answers
// (matchable with errors.Is against ErrUnauthorized and ErrNotFound) or
// wrapped in ErrUnavailable when the server cannot be reached.
//
// InitDatabase opens the local SQLite cache and applies its embedded goose
// migrations.
package client
