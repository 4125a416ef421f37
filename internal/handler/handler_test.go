package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himalayancrown/hotel-reservation/internal/config"
	"github.com/himalayancrown/hotel-reservation/internal/handler"
	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/notify"
	"github.com/himalayancrown/hotel-reservation/internal/repository"
	"github.com/himalayancrown/hotel-reservation/internal/router"
	"github.com/himalayancrown/hotel-reservation/internal/service"
	"github.com/himalayancrown/hotel-reservation/internal/store"
	"github.com/himalayancrown/hotel-reservation/internal/validation"
)

const testSecret = "test-secret"

type testApp struct {
	e   *echo.Echo
	res *service.ReservationService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	st := store.NewMemoryStore()
	users := repository.NewUserRepo(st)
	sessions := repository.NewSessionRepo(st)
	menu := repository.NewMenuRepo(st)
	roomTypes := repository.NewRoomTypeRepo(st)
	tables := repository.NewTableBookingRepo(st)
	stays := repository.NewRoomBookingRepo(st)

	gateway := notify.NewGateway(notify.LogProvider{})
	authSvc := service.NewAuthService(users, sessions, "himalayancrown.com")
	catalogSvc := service.NewCatalogService(menu, roomTypes)
	resSvc := service.NewReservationService(users, tables, stays, gateway, nil)

	cfg := config.Config{JWTSecret: testSecret, AccessTTLMin: 60}

	e := echo.New()
	e.Validator = validation.New()
	router.Register(e, router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, authSvc),
		Booking: handler.NewBookingHandler(resSvc),
		Catalog: handler.NewCatalogHandler(catalogSvc),
		Admin:   handler.NewAdminHandler(resSvc, authSvc, gateway),
	}, router.Middlewares{}, testSecret)

	return &testApp{e: e, res: resSvc}
}

func (a *testApp) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

// register returns the issued access token for the new account.
func (a *testApp) register(t *testing.T, name, email string) string {
	t.Helper()
	rec := a.do(http.MethodPost, "/v1/auth/register", "",
		`{"name":"`+name+`","email":"`+email+`","password":"irrelevant"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Access.Token)
	return resp.Access.Token
}

func TestRegisterAndDuplicate(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/v1/auth/register", "",
		`{"name":"Arjun Sharma","email":"arjun@example.com","password":"x"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		User model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.RoleGuest, resp.User.Role)

	rec = app.do(http.MethodPost, "/v1/auth/register", "",
		`{"name":"Imposter","email":"arjun@example.com","password":"y"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/v1/auth/register", "",
		`{"name":"No Email","email":"not-an-email","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/v1/auth/login", "", `{"email":"nobody@example.com"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "user not found")
}

func TestBookingRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/v1/bookings/tables", "",
		`{"name":"X","mobile":"0","date":"2025-02-14","time":"19:00","guests":2}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTableBookingFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Priya Patel", "priya@example.com")

	// Guest count outside 1-20 fails validation.
	rec := app.do(http.MethodPost, "/v1/bookings/tables", token,
		`{"name":"Priya Patel","mobile":"+91 99988 77766","date":"2025-02-14","time":"20:00","guests":25}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodPost, "/v1/bookings/tables", token,
		`{"name":"Priya Patel","mobile":"+91 99988 77766","date":"2025-02-14","time":"20:00","guests":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var b model.TableBooking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.True(t, strings.HasPrefix(b.ID, "HTC-"))
	assert.Equal(t, model.StatusPending, b.Status)

	app.res.Drain()

	rec = app.do(http.MethodGet, "/v1/my/bookings/tables", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []model.TableBooking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, b.ID, mine[0].ID)

	rec = app.do(http.MethodGet, "/v1/my/bookings/rooms", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestRoomBookingComputesTotal(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Arjun Sharma", "arjun@example.com")

	rec := app.do(http.MethodPost, "/v1/bookings/rooms", token,
		`{"roomTypeId":"room-1","roomTypeName":"Classic Heritage 101","checkIn":"2024-12-20","checkOut":"2024-12-23","pricePerNight":200,"roomsCount":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var b model.RoomBooking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 600.0, b.TotalPrice)
	assert.Equal(t, "Arjun Sharma", b.GuestName)

	app.res.Drain()
}

func TestAdminEndpointsRejectGuests(t *testing.T) {
	app := newTestApp(t)
	guest := app.register(t, "Vikram Singh", "vikram@example.com")

	rec := app.do(http.MethodGet, "/v1/admin/stats", guest, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminStatusUpdate(t *testing.T) {
	app := newTestApp(t)
	guest := app.register(t, "Arjun Sharma", "arjun@example.com")
	admin := app.register(t, "Royal Concierge", "admin@himalayancrown.com")

	rec := app.do(http.MethodPost, "/v1/bookings/rooms", guest,
		`{"roomTypeId":"room-1","roomTypeName":"Classic Heritage 101","checkIn":"2025-03-01","checkOut":"2025-03-04","pricePerNight":200,"roomsCount":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var b model.RoomBooking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	app.res.Drain()

	// Status outside the enum fails validation.
	rec = app.do(http.MethodPatch, "/v1/admin/bookings/rooms/"+b.ID+"/status", admin, `{"status":"Approved"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodPatch, "/v1/admin/bookings/rooms/"+b.ID+"/status", admin, `{"status":"Confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	app.res.Drain()

	rec = app.do(http.MethodGet, "/v1/admin/stats", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats service.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 600.0, stats.TotalRevenue)

	// Unknown id succeeds without changing anything.
	rec = app.do(http.MethodPatch, "/v1/admin/bookings/rooms/HRC-NOPE99/status", admin, `{"status":"Cancelled"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	ctx := context.Background()
	rooms, err := app.res.AllRoomBookings(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, model.StatusConfirmed, rooms[0].Status)
}

func TestCatalogPublicAndAdmin(t *testing.T) {
	app := newTestApp(t)
	admin := app.register(t, "Royal Concierge", "admin@himalayancrown.com")

	// Public read, empty to start.
	rec := app.do(http.MethodGet, "/v1/menu", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = app.do(http.MethodPost, "/v1/admin/menu", admin,
		`{"name":"Chana Madra","category":"Himachali Specials","price":18}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var item model.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	require.NotEmpty(t, item.ID)

	rec = app.do(http.MethodPut, "/v1/admin/menu/"+item.ID, admin, `{"price":20}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(http.MethodGet, "/v1/menu", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []model.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, 20.0, items[0].Price)

	rec = app.do(http.MethodDelete, "/v1/admin/menu/"+item.ID, admin, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestEmailTestProbe(t *testing.T) {
	app := newTestApp(t)
	admin := app.register(t, "Royal Concierge", "admin@himalayancrown.com")

	rec := app.do(http.MethodPost, "/v1/admin/email-test", admin, `{"to":"ops@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res notify.ProbeResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "ops@example.com")
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Arjun Sharma", "arjun@example.com")

	rec := app.do(http.MethodPost, "/v1/auth/login", "", `{"email":"arjun@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Logout rides the authenticated surface.
	rec = app.do(http.MethodPost, "/v1/auth/logout", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(http.MethodPost, "/v1/auth/logout", token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(http.MethodGet, "/v1/auth/session", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user":null`)
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)
	rec := app.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
