// Package metadata is the client's durable key/value store. The session
// record lives here under a single fixed key.
//
// Contract shared by every implementation: Get returns (nil, nil) for a
// missing key, Set upserts, Delete of a missing key is not an error.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
