// Package kvstore is the expiring key-value collaborator: the only shared
// state between concurrent requests. Keys are independent entries with an
// optional TTL; there is no transaction and no compare-and-swap, and
// nothing here pretends otherwise.
package kvstore

import (
	"context"
	"time"
)

type Store interface {
	// Get returns the current value, or found=false when the key is
	// absent or has expired.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Put writes the value. A ttl of zero means no expiry.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
}
