// Package metadata is the client-local key-value storage. The cart blob and
// the session token live here.
package metadata

import (
	"context"
)

// Repository is a durable string-keyed byte store. Get returns (nil, nil)
// for a key that was never set.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
