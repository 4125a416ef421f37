package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/notify"
	"github.com/himalayancrown/hotel-reservation/internal/queue"
	"github.com/himalayancrown/hotel-reservation/internal/repository"
	"github.com/himalayancrown/hotel-reservation/internal/store"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (f *fakeNotifier) Notify(_ context.Context, msg notify.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeNotifier) messages() []notify.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]notify.Message, len(f.sent))
	copy(out, f.sent)
	return out
}

type fakePublisher struct {
	mu     sync.Mutex
	events []queue.BookingEvent
}

func (f *fakePublisher) Publish(_ context.Context, ev queue.BookingEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return nil
}

func newTestService(t *testing.T) (*ReservationService, *repository.UserRepo, *fakeNotifier, *fakePublisher) {
	t.Helper()
	st := store.NewMemoryStore()
	users := repository.NewUserRepo(st)
	tables := repository.NewTableBookingRepo(st)
	rooms := repository.NewRoomBookingRepo(st)
	fn := &fakeNotifier{}
	fp := &fakePublisher{}
	return NewReservationService(users, tables, rooms, fn, fp), users, fn, fp
}

func TestComputeNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2024-12-20", "2024-12-23", 3},
		{"single night", "2024-12-20", "2024-12-21", 1},
		{"same day still charges one night", "2024-12-20", "2024-12-20", 1},
		{"checkout before checkin clamps to one", "2024-12-23", "2024-12-20", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := computeNights(tc.checkIn, tc.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := computeNights("not-a-date", "2024-12-20")
	assert.Error(t, err)
}

func TestCreateRoomBookingPricing(t *testing.T) {
	svc, users, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, users.Append(ctx, model.User{ID: "u1", Name: "Arjun Sharma", Email: "arjun@example.com", Role: model.RoleGuest}))

	b, err := svc.CreateRoomBooking(ctx, RoomBookingInput{
		UserID:        "u1",
		RoomTypeID:    "room-1",
		RoomTypeName:  "Classic Heritage 101",
		CheckIn:       "2024-12-20",
		CheckOut:      "2024-12-23",
		PricePerNight: 200,
		RoomsCount:    1,
	})
	require.NoError(t, err)
	svc.Drain()

	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 600.0, b.TotalPrice)
	assert.Equal(t, model.StatusPending, b.Status)
	assert.True(t, strings.HasPrefix(b.ID, "HRC-"))
	assert.Len(t, b.ID, len("HRC-")+6)

	// Denormalized from the user record at creation time.
	assert.Equal(t, "Arjun Sharma", b.GuestName)
	assert.Equal(t, "arjun@example.com", b.GuestEmail)
}

func TestCreateRoomBookingUnknownUserFallsBack(t *testing.T) {
	svc, _, fn, _ := newTestService(t)

	b, err := svc.CreateRoomBooking(context.Background(), RoomBookingInput{
		UserID:        "ghost",
		RoomTypeID:    "room-2",
		RoomTypeName:  "Deluxe Oasis 102",
		CheckIn:       "2025-01-10",
		CheckOut:      "2025-01-12",
		PricePerNight: 225,
		RoomsCount:    2,
	})
	require.NoError(t, err)
	svc.Drain()

	assert.Equal(t, "Guest", b.GuestName)
	assert.Equal(t, "N/A", b.GuestEmail)
	assert.Equal(t, 900.0, b.TotalPrice)

	msgs := fn.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, fallbackEmail, msgs[0].To)
}

func TestCreateTableBooking(t *testing.T) {
	svc, users, fn, fp := newTestService(t)
	ctx := context.Background()

	require.NoError(t, users.Append(ctx, model.User{ID: "u2", Name: "Priya Patel", Email: "priya@example.com", Role: model.RoleGuest}))

	b, err := svc.CreateTableBooking(ctx, TableBookingInput{
		UserID: "u2",
		Name:   "Priya Patel",
		Mobile: "+91 99988 77766",
		Date:   "2025-02-14",
		Time:   "20:00",
		Guests: 2,
	})
	require.NoError(t, err)
	svc.Drain()

	assert.True(t, strings.HasPrefix(b.ID, "HTC-"))
	assert.Equal(t, model.StatusPending, b.Status)
	assert.GreaterOrEqual(t, b.TableNo, 1)
	assert.LessOrEqual(t, b.TableNo, 20)
	assert.NotEmpty(t, b.CreatedAt)

	msgs := fn.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "priya@example.com", msgs[0].To)
	assert.Equal(t, notify.TemplateTableBooking, msgs[0].Template)

	fp.mu.Lock()
	defer fp.mu.Unlock()
	require.Len(t, fp.events, 1)
	assert.Equal(t, queue.ActionCreated, fp.events[0].Action)
	assert.Equal(t, "table", fp.events[0].Kind)
}

func TestBookingRefsAreUnique(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		b, err := svc.CreateTableBooking(ctx, TableBookingInput{
			UserID: "u1", Name: "X", Mobile: "0", Date: "2025-01-01", Time: "18:00", Guests: 2,
		})
		require.NoError(t, err)
		assert.False(t, seen[b.ID], "duplicate booking ref %s", b.ID)
		seen[b.ID] = true
	}
	svc.Drain()
}

func TestUpdateStatusNotifiesOnlyOnConfirm(t *testing.T) {
	svc, users, fn, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, users.Append(ctx, model.User{ID: "u1", Name: "Arjun Sharma", Email: "arjun@example.com"}))
	b, err := svc.CreateRoomBooking(ctx, RoomBookingInput{
		UserID: "u1", RoomTypeID: "room-1", RoomTypeName: "Classic Heritage 101",
		CheckIn: "2025-03-01", CheckOut: "2025-03-02", PricePerNight: 200, RoomsCount: 1,
	})
	require.NoError(t, err)
	svc.Drain()
	require.Len(t, fn.messages(), 1) // creation email

	// Cancelling does not notify.
	require.NoError(t, svc.UpdateRoomStatus(ctx, b.ID, model.StatusCancelled))
	svc.Drain()
	assert.Len(t, fn.messages(), 1)

	// Confirming sends exactly one more.
	require.NoError(t, svc.UpdateRoomStatus(ctx, b.ID, model.StatusConfirmed))
	svc.Drain()
	msgs := fn.messages()
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].Subject, "Confirmed")

	rooms, err := svc.AllRoomBookings(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, model.StatusConfirmed, rooms[0].Status)
}

func TestUpdateStatusUnknownIDIsNoOp(t *testing.T) {
	svc, _, fn, fp := newTestService(t)
	ctx := context.Background()

	b, err := svc.CreateTableBooking(ctx, TableBookingInput{
		UserID: "u1", Name: "X", Mobile: "0", Date: "2025-01-01", Time: "18:00", Guests: 2,
	})
	require.NoError(t, err)
	svc.Drain()
	created := len(fn.messages())
	fp.mu.Lock()
	published := len(fp.events)
	fp.mu.Unlock()

	require.NoError(t, svc.UpdateTableStatus(ctx, "HTC-NOPE99", model.StatusConfirmed))
	svc.Drain()

	// Nothing mutated, nothing sent.
	assert.Len(t, fn.messages(), created)
	fp.mu.Lock()
	assert.Len(t, fp.events, published)
	fp.mu.Unlock()

	tables, err := svc.AllTableBookings(ctx)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, b.ID, tables[0].ID)
	assert.Equal(t, model.StatusPending, tables[0].Status)
}

func TestGetStats(t *testing.T) {
	svc, users, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, users.Append(ctx, model.User{ID: "u1", Name: "A", Email: "a@example.com"}))
	require.NoError(t, users.Append(ctx, model.User{ID: "u2", Name: "B", Email: "b@example.com"}))

	r1, err := svc.CreateRoomBooking(ctx, RoomBookingInput{
		UserID: "u1", RoomTypeID: "room-1", RoomTypeName: "Classic Heritage 101",
		CheckIn: "2025-03-01", CheckOut: "2025-03-04", PricePerNight: 200, RoomsCount: 1,
	})
	require.NoError(t, err)
	_, err = svc.CreateRoomBooking(ctx, RoomBookingInput{
		UserID: "u2", RoomTypeID: "room-2", RoomTypeName: "Deluxe Oasis 102",
		CheckIn: "2025-03-01", CheckOut: "2025-03-02", PricePerNight: 225, RoomsCount: 1,
	})
	require.NoError(t, err)
	tb, err := svc.CreateTableBooking(ctx, TableBookingInput{
		UserID: "u1", Name: "A", Mobile: "0", Date: "2025-03-01", Time: "19:00", Guests: 4,
	})
	require.NoError(t, err)
	svc.Drain()

	// Pending bookings contribute no revenue.
	st, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, st.TotalRevenue)
	assert.Equal(t, 2, st.PendingRooms)
	assert.Equal(t, 1, st.PendingTables)
	assert.Equal(t, 2, st.TotalGuests)

	// Only the confirmed room booking counts toward revenue.
	require.NoError(t, svc.UpdateRoomStatus(ctx, r1.ID, model.StatusConfirmed))
	svc.Drain()
	st, err = svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 600.0, st.TotalRevenue)
	assert.Equal(t, 1, st.PendingRooms)

	// Confirming a table booking never moves revenue.
	require.NoError(t, svc.UpdateTableStatus(ctx, tb.ID, model.StatusConfirmed))
	svc.Drain()
	st, err = svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 600.0, st.TotalRevenue)
	assert.Equal(t, 0, st.PendingTables)
}

func TestBookingsForUserFiltersByOwner(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	for _, uid := range []string{"u1", "u1", "u2"} {
		_, err := svc.CreateTableBooking(ctx, TableBookingInput{
			UserID: uid, Name: "X", Mobile: "0", Date: "2025-01-01", Time: "18:00", Guests: 2,
		})
		require.NoError(t, err)
	}
	svc.Drain()

	mine, err := svc.TableBookingsForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := svc.TableBookingsForUser(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}
