// Package models holds the JSON shapes the terminal client exchanges with
// the Taskkeeper API.
package models
