// Package kvstore is the durable key-value mechanism behind the session and
// preference managers. A key either holds a string value or is absent;
// absence is meaningful (no session, no stored theme).
package kvstore

import "context"

type Store interface {
	// Get returns the value for key and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
