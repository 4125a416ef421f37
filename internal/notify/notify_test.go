package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himalayancrown/hotel-reservation/internal/model"
)

func TestLogProviderNeverFails(t *testing.T) {
	gw := NewGateway(LogProvider{})

	err := gw.Notify(context.Background(), Message{
		To:       "guest@example.com",
		Subject:  "anything",
		Template: TemplateTableBooking,
		Params:   map[string]any{"guest_name": "Arjun"},
	})
	assert.NoError(t, err)
}

func TestEmailJSProviderSend(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewEmailJSProvider("svc_1", "tpl_1", "pub_1")
	p.Endpoint = srv.URL

	msg := Message{
		To:       "priya@example.com",
		Subject:  "Table Reservation Pending - HTC-ABC123",
		Template: TemplateTableBooking,
		Params:   map[string]any{"guest_name": "Priya Patel"},
	}
	require.NoError(t, p.Send(context.Background(), msg))

	assert.Equal(t, "svc_1", got["service_id"])
	assert.Equal(t, "tpl_1", got["template_id"])
	assert.Equal(t, "pub_1", got["user_id"])

	params, ok := got["template_params"].(map[string]any)
	require.True(t, ok)
	// Recipient and subject ride inside template_params.
	assert.Equal(t, "priya@example.com", params["to_email"])
	assert.Equal(t, msg.Subject, params["subject"])
	assert.Equal(t, "Priya Patel", params["guest_name"])
}

func TestEmailJSProviderNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("invalid public key"))
	}))
	defer srv.Close()

	p := NewEmailJSProvider("svc_1", "tpl_1", "bad")
	p.Endpoint = srv.URL

	err := p.Send(context.Background(), Message{To: "x@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "invalid public key")
}

func TestTestProbe(t *testing.T) {
	gw := NewGateway(LogProvider{})

	res := gw.TestProbe(context.Background(), "")
	assert.True(t, res.Success)
	assert.Equal(t, "Test email sent to test@example.com. Check your inbox and spam folder!", res.Message)

	res = gw.TestProbe(context.Background(), "admin@himalayancrown.com")
	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "admin@himalayancrown.com")
}

func TestTestProbeReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	p := NewEmailJSProvider("svc_1", "tpl_1", "pub_1")
	p.Endpoint = srv.URL

	res := NewGateway(p).TestProbe(context.Background(), "ops@example.com")
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "Email test failed")
}

func TestBookingMessages(t *testing.T) {
	tb := model.TableBooking{
		ID: "HTC-ABC123", Name: "Arjun Sharma", Date: "2025-02-14", Time: "19:30",
		Guests: 4, TableNo: 7, Status: model.StatusConfirmed,
	}
	msg := TableBookingMessage(tb, "arjun@example.com")
	assert.Equal(t, "Table Reservation Confirmed - HTC-ABC123", msg.Subject)
	assert.Equal(t, "7", msg.Params["table_number"])

	tb.TableNo = 0
	msg = TableBookingMessage(tb, "arjun@example.com")
	assert.Equal(t, "To be assigned", msg.Params["table_number"])

	rb := model.RoomBooking{
		ID: "HRC-XYZ789", GuestName: "Priya Patel", RoomTypeName: "Deluxe Oasis 102",
		CheckIn: "2025-03-01", CheckOut: "2025-03-04", Nights: 3, RoomsCount: 1,
		TotalPrice: 675, Status: model.StatusPending,
	}
	rmsg := RoomBookingMessage(rb, "priya@example.com")
	assert.Equal(t, "Room Reservation Pending - HRC-XYZ789", rmsg.Subject)
	assert.Equal(t, "₹675.00", rmsg.Params["total_price"])
}
