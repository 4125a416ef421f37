// Package store provides the durable key/value store that holds the
// application's collections.  Each key maps to the full JSON-serialized
// collection (or single object, for the session pointer); every save
// rewrites the whole value, so readers never observe a partial write.
package store

import (
	"context"
	"errors"
)

// Keys of the persisted entries.  The hhc prefix namespaces the hotel's
// data inside a shared Redis database or kv table.
const (
	KeyUsers         = "hhc:users"
	KeyMenu          = "hhc:menu"
	KeyRoomTypes     = "hhc:room_types"
	KeyTableBookings = "hhc:table_bookings"
	KeyRoomBookings  = "hhc:room_bookings"
	KeyCurrentUser   = "hhc:current_user"
)

// ErrKeyNotFound is returned by Get when no value exists under the key.
// Callers treat a missing entry the same as an empty collection.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is the minimal contract the repositories depend on.  Implementations
// must make Put atomic per key (last write wins).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}
