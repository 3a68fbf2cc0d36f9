// Package metadata stores the terminal client's session state (access token
// and email) as key/value pairs in the local SQLite database.
package metadata
