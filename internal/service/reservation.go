// Package service implements the application's business operations over the
// repositories: booking lifecycle, identity/session handling and catalog
// management.  Handlers stay thin and call into this package.
package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/himalayancrown/hotel-reservation/internal/metrics"
	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/notify"
	"github.com/himalayancrown/hotel-reservation/internal/queue"
	"github.com/himalayancrown/hotel-reservation/internal/repository"
	"github.com/himalayancrown/hotel-reservation/internal/utils"
)

const dateLayout = "2006-01-02"

// fallbackEmail receives booking notifications when the owning user record
// cannot be resolved; the booking itself is never rejected for that.
const fallbackEmail = "guest@example.com"

// Notifier is the single send-notification interface the reservation flow
// depends on.  *notify.Gateway satisfies it.
type Notifier interface {
	Notify(ctx context.Context, msg notify.Message) error
}

// EventPublisher pushes booking events onto the broker.  A nil publisher
// disables eventing without touching the booking flow.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.BookingEvent) error
}

// ReservationService owns the lifecycle of table and room bookings and the
// derived operational statistics.  Mutations commit to the store and return
// first; notifications and event publishes run as independent follow-up
// tasks whose outcome is observed only in logs and metrics.
type ReservationService struct {
	users  *repository.UserRepo
	tables *repository.TableBookingRepo
	rooms  *repository.RoomBookingRepo

	notifier Notifier
	events   EventPublisher

	wg sync.WaitGroup
}

func NewReservationService(users *repository.UserRepo, tables *repository.TableBookingRepo, rooms *repository.RoomBookingRepo, notifier Notifier, events EventPublisher) *ReservationService {
	if users == nil || tables == nil || rooms == nil || notifier == nil {
		panic("nil dependency passed to NewReservationService")
	}
	return &ReservationService{
		users:    users,
		tables:   tables,
		rooms:    rooms,
		notifier: notifier,
		events:   events,
	}
}

// TableBookingInput carries the booking form fields.  Field presence and the
// 1-20 guest range are validated by the handler before this is called.
type TableBookingInput struct {
	UserID string
	Name   string
	Mobile string
	Date   string
	Time   string
	Guests int
}

// RoomBookingInput carries the stay form fields.  PricePerNight is the rate
// shown to the guest at booking time; the total is frozen from it.
type RoomBookingInput struct {
	UserID        string
	RoomTypeID    string
	RoomTypeName  string
	CheckIn       string
	CheckOut      string
	PricePerNight float64
	RoomsCount    int
}

// Stats is the admin dashboard aggregate.  Only confirmed room bookings
// contribute revenue; table bookings never do.
type Stats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	PendingTables int     `json:"pendingTables"`
	PendingRooms  int     `json:"pendingRooms"`
	TotalGuests   int     `json:"totalGuests"`
}

// CreateTableBooking persists a new pending table booking with a generated
// reference and a table assigned at creation time, then notifies the owning
// user's email best-effort.
func (s *ReservationService) CreateTableBooking(ctx context.Context, in TableBookingInput) (model.TableBooking, error) {
	id, err := utils.NewBookingRef("HTC")
	if err != nil {
		return model.TableBooking{}, err
	}
	b := model.TableBooking{
		ID:        id,
		UserID:    in.UserID,
		Name:      in.Name,
		Mobile:    in.Mobile,
		Date:      in.Date,
		Time:      in.Time,
		Guests:    in.Guests,
		TableNo:   rand.Intn(20) + 1,
		Status:    model.StatusPending,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.tables.Append(ctx, b); err != nil {
		return model.TableBooking{}, err
	}
	metrics.IncBookingCreated("table")

	email := s.ownerEmail(ctx, in.UserID)
	s.notifyAsync(notify.TableBookingMessage(b, email))
	s.publishAsync(queue.BookingEvent{
		Kind:       "table",
		Action:     queue.ActionCreated,
		BookingID:  b.ID,
		UserID:     b.UserID,
		GuestName:  b.Name,
		Status:     string(b.Status),
		Detail:     b.Date + " " + b.Time,
		OccurredAt: b.CreatedAt,
	})
	return b, nil
}

// CreateRoomBooking computes nights and total price from the supplied dates
// and rate, denormalizes the guest's name and email from the user record
// (placeholders when the user cannot be found) and persists the booking as
// pending.  Notification is best-effort, after the commit.
func (s *ReservationService) CreateRoomBooking(ctx context.Context, in RoomBookingInput) (model.RoomBooking, error) {
	nights, err := computeNights(in.CheckIn, in.CheckOut)
	if err != nil {
		return model.RoomBooking{}, err
	}
	id, err := utils.NewBookingRef("HRC")
	if err != nil {
		return model.RoomBooking{}, err
	}

	guestName, guestEmail := "Guest", "N/A"
	notifyTo := fallbackEmail
	if u, err := s.users.FindByID(ctx, in.UserID); err == nil {
		guestName, guestEmail = u.Name, u.Email
		notifyTo = u.Email
	}

	b := model.RoomBooking{
		ID:           id,
		UserID:       in.UserID,
		GuestName:    guestName,
		GuestEmail:   guestEmail,
		RoomTypeID:   in.RoomTypeID,
		RoomTypeName: in.RoomTypeName,
		CheckIn:      in.CheckIn,
		CheckOut:     in.CheckOut,
		Nights:       nights,
		RoomsCount:   in.RoomsCount,
		TotalPrice:   in.PricePerNight * float64(nights) * float64(in.RoomsCount),
		Status:       model.StatusPending,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.rooms.Append(ctx, b); err != nil {
		return model.RoomBooking{}, err
	}
	metrics.IncBookingCreated("room")

	s.notifyAsync(notify.RoomBookingMessage(b, notifyTo))
	s.publishAsync(queue.BookingEvent{
		Kind:       "room",
		Action:     queue.ActionCreated,
		BookingID:  b.ID,
		UserID:     b.UserID,
		GuestName:  b.GuestName,
		Status:     string(b.Status),
		Detail:     b.CheckIn + " to " + b.CheckOut,
		TotalPrice: b.TotalPrice,
		OccurredAt: b.CreatedAt,
	})
	return b, nil
}

// UpdateTableStatus overwrites the status of a table booking.  An unknown id
// is a silent no-op.  Moving to Confirmed re-sends the booking email with
// the new status; no other transition notifies.
func (s *ReservationService) UpdateTableStatus(ctx context.Context, id string, status model.BookingStatus) error {
	bookings, err := s.tables.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(bookings, func(b model.TableBooking) bool { return b.ID == id })
	if idx < 0 {
		log.Debug().Str("id", id).Msg("table status update for unknown booking ignored")
		return nil
	}
	bookings[idx].Status = status
	if err := s.tables.Replace(ctx, bookings); err != nil {
		return err
	}
	metrics.IncBookingStatusChanged("table", string(status))

	b := bookings[idx]
	if status == model.StatusConfirmed {
		s.notifyAsync(notify.TableBookingMessage(b, s.ownerEmail(ctx, b.UserID)))
	}
	s.publishAsync(queue.BookingEvent{
		Kind:       "table",
		Action:     queue.ActionStatusChanged,
		BookingID:  b.ID,
		UserID:     b.UserID,
		GuestName:  b.Name,
		Status:     string(status),
		Detail:     b.Date + " " + b.Time,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

// UpdateRoomStatus is the room-booking counterpart of UpdateTableStatus.
func (s *ReservationService) UpdateRoomStatus(ctx context.Context, id string, status model.BookingStatus) error {
	bookings, err := s.rooms.List(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(bookings, func(b model.RoomBooking) bool { return b.ID == id })
	if idx < 0 {
		log.Debug().Str("id", id).Msg("room status update for unknown booking ignored")
		return nil
	}
	bookings[idx].Status = status
	if err := s.rooms.Replace(ctx, bookings); err != nil {
		return err
	}
	metrics.IncBookingStatusChanged("room", string(status))

	b := bookings[idx]
	if status == model.StatusConfirmed {
		to := s.ownerEmail(ctx, b.UserID)
		s.notifyAsync(notify.RoomBookingMessage(b, to))
	}
	s.publishAsync(queue.BookingEvent{
		Kind:       "room",
		Action:     queue.ActionStatusChanged,
		BookingID:  b.ID,
		UserID:     b.UserID,
		GuestName:  b.GuestName,
		Status:     string(status),
		Detail:     b.CheckIn + " to " + b.CheckOut,
		TotalPrice: b.TotalPrice,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

// TableBookingsForUser returns the user's table bookings, unsorted; the
// presentation layer orders them by creation time.
func (s *ReservationService) TableBookingsForUser(ctx context.Context, userID string) ([]model.TableBooking, error) {
	return s.tables.ListByUser(ctx, userID)
}

// RoomBookingsForUser returns the user's room bookings, unsorted.
func (s *ReservationService) RoomBookingsForUser(ctx context.Context, userID string) ([]model.RoomBooking, error) {
	return s.rooms.ListByUser(ctx, userID)
}

// AllTableBookings returns every table booking for administrative review.
func (s *ReservationService) AllTableBookings(ctx context.Context) ([]model.TableBooking, error) {
	return s.tables.List(ctx)
}

// AllRoomBookings returns every room booking for administrative review.
func (s *ReservationService) AllRoomBookings(ctx context.Context) ([]model.RoomBooking, error) {
	return s.rooms.List(ctx)
}

// GetStats derives the admin dashboard aggregate from the current
// collections.
func (s *ReservationService) GetStats(ctx context.Context) (Stats, error) {
	var st Stats

	roomBookings, err := s.rooms.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	for _, b := range roomBookings {
		if b.Status == model.StatusConfirmed {
			st.TotalRevenue += b.TotalPrice
		}
		if b.Status == model.StatusPending {
			st.PendingRooms++
		}
	}

	tableBookings, err := s.tables.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	for _, b := range tableBookings {
		if b.Status == model.StatusPending {
			st.PendingTables++
		}
	}

	st.TotalGuests, err = s.users.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	return st, nil
}

// Drain blocks until all in-flight notification and publish tasks finish.
// Called on shutdown so a booking accepted just before exit still gets its
// email attempt.
func (s *ReservationService) Drain() { s.wg.Wait() }

// ownerEmail resolves the booking owner's email, degrading to the fallback
// address when the user record is missing.
func (s *ReservationService) ownerEmail(ctx context.Context, userID string) string {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fallbackEmail
	}
	return u.Email
}

// notifyAsync fires the email send without blocking the caller.  Failures
// are logged and never reach the booking's result.
func (s *ReservationService) notifyAsync(msg notify.Message) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.notifier.Notify(ctx, msg); err != nil {
			log.Error().Err(err).Str("to", msg.To).Str("template", string(msg.Template)).Msg("booking notification failed")
		}
	}()
}

// publishAsync fires the broker publish without blocking the caller.  The
// publisher logs its own failures.
func (s *ReservationService) publishAsync(ev queue.BookingEvent) {
	if s.events == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.events.Publish(ctx, ev)
	}()
}

// computeNights charges at least one night; a same-day range still counts
// as a single night's stay.
func computeNights(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0, fmt.Errorf("invalid check-in date %q: %w", checkIn, err)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0, fmt.Errorf("invalid check-out date %q: %w", checkOut, err)
	}
	nights := int(math.Ceil(out.Sub(in).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights, nil
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i := range items {
		if match(items[i]) {
			return i
		}
	}
	return -1
}
