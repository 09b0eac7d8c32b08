// Package storage is the portal's persistent store adapter: a narrow
// key/value abstraction over a process-local durable store, the stand-in for
// the browser localStorage the original portal persisted into. Higher layers
// treat every stored value as a serialized record; the adapter itself carries
// no business rules.
package storage

import "context"

// Store reads and writes string-keyed serialized values.
//
// Contract:
//   - Get returns (nil, nil) for a missing key; a missing key is never an error.
//   - Set overwrites any existing value.
//   - Delete of a missing key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
