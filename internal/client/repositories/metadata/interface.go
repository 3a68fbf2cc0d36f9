package metadata

import (
	"context"
)

// Keys used by the terminal client.
const (
	KeyAccessToken = "access_token"
	KeyEmail       = "email"
)

// Repository is a small key/value store for client session state.
// Get reports found=false when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
