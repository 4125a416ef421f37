package repository

import (
	"context"

	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/store"
)

// TableBookingRepo persists table bookings under hhc:table_bookings.
type TableBookingRepo struct{ Store store.Store }

func NewTableBookingRepo(s store.Store) *TableBookingRepo { return &TableBookingRepo{Store: s} }

func (r *TableBookingRepo) List(ctx context.Context) ([]model.TableBooking, error) {
	return loadCollection[model.TableBooking](ctx, r.Store, store.KeyTableBookings)
}

func (r *TableBookingRepo) Replace(ctx context.Context, bookings []model.TableBooking) error {
	return saveCollection(ctx, r.Store, store.KeyTableBookings, bookings)
}

func (r *TableBookingRepo) Append(ctx context.Context, b model.TableBooking) error {
	bookings, err := r.List(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, b)
	return r.Replace(ctx, bookings)
}

// ListByUser returns the user's table bookings in store order; callers sort
// by creation time when presenting them.
func (r *TableBookingRepo) ListByUser(ctx context.Context, userID string) ([]model.TableBooking, error) {
	bookings, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.TableBooking, 0, len(bookings))
	for _, b := range bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// RoomBookingRepo persists room bookings under hhc:room_bookings.
type RoomBookingRepo struct{ Store store.Store }

func NewRoomBookingRepo(s store.Store) *RoomBookingRepo { return &RoomBookingRepo{Store: s} }

func (r *RoomBookingRepo) List(ctx context.Context) ([]model.RoomBooking, error) {
	return loadCollection[model.RoomBooking](ctx, r.Store, store.KeyRoomBookings)
}

func (r *RoomBookingRepo) Replace(ctx context.Context, bookings []model.RoomBooking) error {
	return saveCollection(ctx, r.Store, store.KeyRoomBookings, bookings)
}

func (r *RoomBookingRepo) Append(ctx context.Context, b model.RoomBooking) error {
	bookings, err := r.List(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, b)
	return r.Replace(ctx, bookings)
}

func (r *RoomBookingRepo) ListByUser(ctx context.Context, userID string) ([]model.RoomBooking, error) {
	bookings, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.RoomBooking, 0, len(bookings))
	for _, b := range bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}
