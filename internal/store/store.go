// Package store implements the local object storage layer.
//
// Objects are addressed by the hex form of their fingerprint and laid out
// git-style under a sharded directory tree. The store is a plain key-value
// surface: callers frame and hash objects, the store only persists bytes.
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("rit: object not found")
	ErrCorrupt  = errors.New("rit: corrupt object")
)

// Store handles persistence of framed object bytes.
type Store interface {
	// Get retrieves an object's framed bytes by hex id.
	Get(ctx context.Context, id string) ([]byte, error)

	// Put persists framed bytes under the given hex id. Writing an id
	// that already exists is a no-op.
	Put(ctx context.Context, id string, framed []byte) error

	// Has checks if an object exists.
	Has(ctx context.Context, id string) (bool, error)
}
