package ports

import "context"

// KeyValueStore is a local byte store addressed by string keys
type KeyValueStore interface {
	// Get returns the value stored under key, or nil and no error when the key is absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error

	Close() error
}
