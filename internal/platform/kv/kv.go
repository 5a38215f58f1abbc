package kv

import "context"

// Store is the durable key-value substrate the memorial services persist
// into. Values are opaque text blobs; callers own serialization.
//
// Get reports whether the key exists; a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
