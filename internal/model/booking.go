package model

// BookingStatus is the lifecycle state of a table or room booking.
type BookingStatus string

// Every booking starts Pending and moves to Confirmed or Cancelled through
// the admin console.  There are no other states.
const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
)

// Valid reports whether s is one of the three known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// TableBooking is a restaurant table reservation.
//
// Fields:
//  ID        – generated identifier with a human-readable "HTC-" prefix.
//  UserID    – owning user; the booking is referenced, never owned, by them.
//  Name      – contact name given on the booking form.
//  Mobile    – contact number given on the booking form.
//  Date      – reservation date, "YYYY-MM-DD".
//  Time      – reservation time, "HH:MM".
//  Guests    – party size, 1 to 20.
//  TableNo   – table assigned at creation time, never reassigned.
//  Status    – Pending/Confirmed/Cancelled.
//  CreatedAt – RFC 3339 creation timestamp.
type TableBooking struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Name      string        `json:"name"`
	Mobile    string        `json:"mobile"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Guests    int           `json:"guests"`
	TableNo   int           `json:"tableNo,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt string        `json:"createdAt"`
}

// RoomBooking is a stay reservation for one room type.  Guest name and email
// are captured from the user record at booking time and never re-synced;
// Nights and TotalPrice are computed once at creation and stay frozen even
// if the room's nightly rate changes later.
//
// Fields:
//  ID            – generated identifier with a human-readable "HRC-" prefix.
//  UserID        – owning user.
//  GuestName     – denormalized copy of the user's name.
//  GuestEmail    – denormalized copy of the user's email.
//  RoomTypeID    – referenced room type.
//  RoomTypeName  – denormalized copy of the room type's display name.
//  CheckIn       – check-in date, "YYYY-MM-DD".
//  CheckOut      – check-out date, "YYYY-MM-DD".
//  Nights        – max(1, ceil(checkOut-checkIn in days)); same-day stays charge one night.
//  RoomsCount    – number of rooms booked.
//  TotalPrice    – pricePerNight * Nights * RoomsCount at booking time.
//  Status        – Pending/Confirmed/Cancelled.
//  CreatedAt     – RFC 3339 creation timestamp.
type RoomBooking struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	GuestName    string        `json:"guestName"`
	GuestEmail   string        `json:"guestEmail"`
	RoomTypeID   string        `json:"roomTypeId"`
	RoomTypeName string        `json:"roomTypeName"`
	CheckIn      string        `json:"checkIn"`
	CheckOut     string        `json:"checkOut"`
	Nights       int           `json:"nights"`
	RoomsCount   int           `json:"roomsCount"`
	TotalPrice   float64       `json:"totalPrice"`
	Status       BookingStatus `json:"status"`
	CreatedAt    string        `json:"createdAt"`
}
