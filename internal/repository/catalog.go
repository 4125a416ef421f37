package repository

import (
	"context"

	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/store"
)

// MenuRepo persists the menu collection under hhc:menu.
type MenuRepo struct{ Store store.Store }

func NewMenuRepo(s store.Store) *MenuRepo { return &MenuRepo{Store: s} }

func (r *MenuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	return loadCollection[model.MenuItem](ctx, r.Store, store.KeyMenu)
}

func (r *MenuRepo) Replace(ctx context.Context, items []model.MenuItem) error {
	return saveCollection(ctx, r.Store, store.KeyMenu, items)
}

// RoomTypeRepo persists the room type collection under hhc:room_types.
type RoomTypeRepo struct{ Store store.Store }

func NewRoomTypeRepo(s store.Store) *RoomTypeRepo { return &RoomTypeRepo{Store: s} }

func (r *RoomTypeRepo) List(ctx context.Context) ([]model.RoomType, error) {
	return loadCollection[model.RoomType](ctx, r.Store, store.KeyRoomTypes)
}

func (r *RoomTypeRepo) Replace(ctx context.Context, rooms []model.RoomType) error {
	return saveCollection(ctx, r.Store, store.KeyRoomTypes, rooms)
}

// FindByID returns the room type with the given id.
func (r *RoomTypeRepo) FindByID(ctx context.Context, id string) (model.RoomType, error) {
	rooms, err := r.List(ctx)
	if err != nil {
		return model.RoomType{}, err
	}
	for _, rt := range rooms {
		if rt.ID == id {
			return rt, nil
		}
	}
	return model.RoomType{}, ErrNotFound
}
