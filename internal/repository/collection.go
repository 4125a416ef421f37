package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/himalayancrown/hotel-reservation/internal/store"
)

// loadCollection decodes the JSON array stored under key.  A missing entry
// yields an empty slice, and so does a malformed one: the store carries no
// schema version, so a value that fails to parse is logged and treated as
// empty rather than crashing the caller.
func loadCollection[T any](ctx context.Context, s store.Store, key string) ([]T, error) {
	b, err := s.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("malformed store entry, treating as empty")
		return []T{}, nil
	}
	return items, nil
}

// saveCollection rewrites the entire collection under key.
func saveCollection[T any](ctx context.Context, s store.Store, key string, items []T) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, b)
}
