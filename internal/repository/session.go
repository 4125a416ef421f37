package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/store"
)

// SessionRepo persists the current-session pointer under hhc:current_user.
// The pointer holds the full user object of whoever logged in last; logout
// deletes the entry.
type SessionRepo struct{ Store store.Store }

func NewSessionRepo(s store.Store) *SessionRepo { return &SessionRepo{Store: s} }

// Current returns the persisted session user.  A missing or malformed entry
// reports ErrUserNotFound, meaning nobody is logged in.
func (r *SessionRepo) Current(ctx context.Context) (model.User, error) {
	b, err := r.Store.Get(ctx, store.KeyCurrentUser)
	if errors.Is(err, store.ErrKeyNotFound) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := json.Unmarshal(b, &u); err != nil {
		log.Warn().Str("key", store.KeyCurrentUser).Err(err).Msg("malformed session entry, treating as logged out")
		return model.User{}, ErrUserNotFound
	}
	if u.ID == "" {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

// Set overwrites the session pointer with the given user.
func (r *SessionRepo) Set(ctx context.Context, u model.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return r.Store.Put(ctx, store.KeyCurrentUser, b)
}

// Clear removes the session pointer.
func (r *SessionRepo) Clear(ctx context.Context) error {
	return r.Store.Del(ctx, store.KeyCurrentUser)
}
