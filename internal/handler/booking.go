package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/himalayancrown/hotel-reservation/internal/middleware"
	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/service"
)

// BookingHandler exposes the guest-facing booking endpoints.
type BookingHandler struct {
	Res *service.ReservationService
}

func NewBookingHandler(res *service.ReservationService) *BookingHandler {
	return &BookingHandler{Res: res}
}

// ----- DTOs -----

type tableBookingReq struct {
	Name   string `json:"name" validate:"required"`
	Mobile string `json:"mobile" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required"`
	Guests int    `json:"guests" validate:"required,min=1,max=20"`
}

type roomBookingReq struct {
	RoomTypeID    string  `json:"roomTypeId" validate:"required"`
	RoomTypeName  string  `json:"roomTypeName" validate:"required"`
	CheckIn       string  `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut      string  `json:"checkOut" validate:"required,datetime=2006-01-02"`
	PricePerNight float64 `json:"pricePerNight" validate:"required,gt=0"`
	RoomsCount    int     `json:"roomsCount" validate:"required,min=1"`
}


// CreateTable books a restaurant table for the authenticated user.  The
// booking starts Pending with a table assigned up front.
func (h *BookingHandler) CreateTable(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req tableBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Res.CreateTableBooking(ctx, service.TableBookingInput{
		UserID: uid,
		Name:   req.Name,
		Mobile: req.Mobile,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}
	return c.JSON(http.StatusCreated, b)
}

// CreateRoom books a stay for the authenticated user.  Nights and total
// price are computed server-side from the submitted dates and rate.
func (h *BookingHandler) CreateRoom(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req roomBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Res.CreateRoomBooking(ctx, service.RoomBookingInput{
		UserID:        uid,
		RoomTypeID:    req.RoomTypeID,
		RoomTypeName:  req.RoomTypeName,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		PricePerNight: req.PricePerNight,
		RoomsCount:    req.RoomsCount,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}
	return c.JSON(http.StatusCreated, b)
}

// MyTableBookings returns the caller's table bookings, newest first.
func (h *BookingHandler) MyTableBookings(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tables, err := h.Res.TableBookingsForUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}
	// RFC 3339 strings sort lexicographically in time order.
	sort.Slice(tables, func(i, j int) bool { return tables[i].CreatedAt > tables[j].CreatedAt })
	if tables == nil {
		tables = []model.TableBooking{}
	}
	return c.JSON(http.StatusOK, tables)
}

// MyRoomBookings returns the caller's room bookings, newest first.
func (h *BookingHandler) MyRoomBookings(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Res.RoomBookingsForUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].CreatedAt > rooms[j].CreatedAt })
	if rooms == nil {
		rooms = []model.RoomBooking{}
	}
	return c.JSON(http.StatusOK, rooms)
}
