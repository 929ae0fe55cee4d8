package interfaces

import "context"

// Cache is a keyed store of values with a TTL. myredis.NewCache implements it on Redis and
// myredis.PlayerStateStore persists player state through it.
type Cache[T any] interface {
	// WriteValue writes value in cache with the given TTL (ms); ttlMs <= 0 keeps the value without expiry.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when marshalling or the storage write fails.
	WriteValue(ctx context.Context, key string, item T, ttlMs int) error

	// ReadValue returns the value stored under key.
	// Returns:
	// 1) (item, nil) on success;
	// 2) entity_not_found when the key does not exist;
	// 3) internal_server_error when the read or unmarshalling fails.
	ReadValue(ctx context.Context, key string) (T, error)

	// DeleteValue deletes the value for the given key; deleting a missing key is not an error.
	DeleteValue(ctx context.Context, key string) error

	// ListAllValues returns all values under the cache prefix.
	// Returns entity_not_found when there is none.
	ListAllValues(ctx context.Context) ([]T, error)
}
