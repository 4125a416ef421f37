package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/repository"
)

// CatalogService is plain CRUD over the menu and room type collections.
// Updates merge partial fields by id and silently do nothing for an unknown
// id; generated ids make collisions overwhelmingly unlikely but are not
// strictly enforced.
type CatalogService struct {
	menu  *repository.MenuRepo
	rooms *repository.RoomTypeRepo
}

func NewCatalogService(menu *repository.MenuRepo, rooms *repository.RoomTypeRepo) *CatalogService {
	return &CatalogService{menu: menu, rooms: rooms}
}

// MenuItemPatch holds the updatable menu item fields; nil means unchanged.
type MenuItemPatch struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

// RoomTypePatch holds the updatable room type fields; nil means unchanged.
type RoomTypePatch struct {
	Name          *string   `json:"type"`
	PricePerNight *float64  `json:"pricePerNight"`
	Image         *string   `json:"image"`
	Capacity      *int      `json:"capacity"`
	Description   *string   `json:"description"`
	Amenities     *[]string `json:"amenities"`
}

func (s *CatalogService) Menu(ctx context.Context) ([]model.MenuItem, error) {
	return s.menu.List(ctx)
}

// AddMenuItem assigns a fresh id and appends the item.
func (s *CatalogService) AddMenuItem(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	item.ID = uuid.NewString()
	items, err := s.menu.List(ctx)
	if err != nil {
		return model.MenuItem{}, err
	}
	items = append(items, item)
	if err := s.menu.Replace(ctx, items); err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, id string, patch MenuItemPatch) error {
	items, err := s.menu.List(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if patch.Name != nil {
			items[i].Name = *patch.Name
		}
		if patch.Category != nil {
			items[i].Category = *patch.Category
		}
		if patch.Price != nil {
			items[i].Price = *patch.Price
		}
		if patch.Image != nil {
			items[i].Image = *patch.Image
		}
		if patch.Description != nil {
			items[i].Description = *patch.Description
		}
		break
	}
	return s.menu.Replace(ctx, items)
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, id string) error {
	items, err := s.menu.List(ctx)
	if err != nil {
		return err
	}
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return s.menu.Replace(ctx, out)
}

func (s *CatalogService) RoomTypes(ctx context.Context) ([]model.RoomType, error) {
	return s.rooms.List(ctx)
}

// RoomTypeByID resolves a room type, used when a booking form references one.
func (s *CatalogService) RoomTypeByID(ctx context.Context, id string) (model.RoomType, error) {
	return s.rooms.FindByID(ctx, id)
}

// AddRoomType assigns a fresh id and appends the room type.
func (s *CatalogService) AddRoomType(ctx context.Context, rt model.RoomType) (model.RoomType, error) {
	rt.ID = uuid.NewString()
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return model.RoomType{}, err
	}
	rooms = append(rooms, rt)
	if err := s.rooms.Replace(ctx, rooms); err != nil {
		return model.RoomType{}, err
	}
	return rt, nil
}

func (s *CatalogService) UpdateRoomType(ctx context.Context, id string, patch RoomTypePatch) error {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return err
	}
	for i := range rooms {
		if rooms[i].ID != id {
			continue
		}
		if patch.Name != nil {
			rooms[i].Name = *patch.Name
		}
		if patch.PricePerNight != nil {
			rooms[i].PricePerNight = *patch.PricePerNight
		}
		if patch.Image != nil {
			rooms[i].Image = *patch.Image
		}
		if patch.Capacity != nil {
			rooms[i].Capacity = *patch.Capacity
		}
		if patch.Description != nil {
			rooms[i].Description = *patch.Description
		}
		if patch.Amenities != nil {
			rooms[i].Amenities = *patch.Amenities
		}
		break
	}
	return s.rooms.Replace(ctx, rooms)
}

func (s *CatalogService) DeleteRoomType(ctx context.Context, id string) error {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return err
	}
	out := rooms[:0]
	for _, rt := range rooms {
		if rt.ID != id {
			out = append(out, rt)
		}
	}
	return s.rooms.Replace(ctx, out)
}
