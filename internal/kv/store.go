// Package kv persists whole record collections under named keys.
//
// A Store moves opaque values. Collections layers the key prefix, JSON
// encoding, record validation and per-key locking on top of it.
package kv

import "context"

// Store is a durable key-value backend. Put overwrites the whole value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}
