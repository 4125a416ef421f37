package notify

import (
	"fmt"

	"github.com/himalayancrown/hotel-reservation/internal/model"
)

// Contact block included in every booking email.
const (
	HotelName    = "Hotel Himalayan Crown"
	ContactEmail = "reservations@himalayancrown.com"
	ContactPhone = "+91 7876812345"
)

// TableBookingMessage renders the table reservation status email for the
// booking's current status.  The same message is sent at creation (Pending)
// and again when an admin confirms.
func TableBookingMessage(b model.TableBooking, to string) Message {
	tableNo := "To be assigned"
	if b.TableNo > 0 {
		tableNo = fmt.Sprintf("%d", b.TableNo)
	}
	return Message{
		To:       to,
		Subject:  fmt.Sprintf("Table Reservation %s - %s", b.Status, b.ID),
		Template: TemplateTableBooking,
		Params: map[string]any{
			"guest_name":    b.Name,
			"booking_id":    b.ID,
			"booking_date":  b.Date,
			"booking_time":  b.Time,
			"guests":        b.Guests,
			"table_number":  tableNo,
			"status":        string(b.Status),
			"hotel_name":    HotelName,
			"contact_email": ContactEmail,
			"contact_phone": ContactPhone,
		},
	}
}

// RoomBookingMessage renders the room reservation status email.
func RoomBookingMessage(b model.RoomBooking, to string) Message {
	return Message{
		To:       to,
		Subject:  fmt.Sprintf("Room Reservation %s - %s", b.Status, b.ID),
		Template: TemplateRoomBooking,
		Params: map[string]any{
			"guest_name":    b.GuestName,
			"booking_id":    b.ID,
			"room_type":     b.RoomTypeName,
			"check_in":      b.CheckIn,
			"check_out":     b.CheckOut,
			"nights":        b.Nights,
			"rooms_count":   b.RoomsCount,
			"total_price":   fmt.Sprintf("₹%.2f", b.TotalPrice),
			"status":        string(b.Status),
			"hotel_name":    HotelName,
			"contact_email": ContactEmail,
			"contact_phone": ContactPhone,
		},
	}
}
