package repository

import (
	"context"
	"strings"

	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/store"
)

// UserRepo persists the user collection under hhc:users.
type UserRepo struct{ Store store.Store }

func NewUserRepo(s store.Store) *UserRepo { return &UserRepo{Store: s} }

// NormalizeEmail lower-cases and trims an email so lookups and duplicate
// checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// List returns every registered user.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	return loadCollection[model.User](ctx, r.Store, store.KeyUsers)
}

// Append adds a user after checking email uniqueness against the current
// collection.  Returns ErrEmailExists on a duplicate; the collection is left
// untouched in that case.
func (r *UserRepo) Append(ctx context.Context, u model.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range users {
		if existing.Email == u.Email {
			return ErrEmailExists
		}
	}
	users = append(users, u)
	return saveCollection(ctx, r.Store, store.KeyUsers, users)
}

// FindByEmail looks a user up by normalized email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (model.User, error) {
	email = NormalizeEmail(email)
	users, err := r.List(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

// FindByID looks a user up by id.
func (r *UserRepo) FindByID(ctx context.Context, id string) (model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

// Count returns the number of registered users.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	users, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
