package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/notify"
	"github.com/himalayancrown/hotel-reservation/internal/service"
)

// AdminHandler exposes the management console endpoints: dashboard stats,
// user listing, booking oversight and the email connectivity probe.
type AdminHandler struct {
	Res     *service.ReservationService
	Auth    *service.AuthService
	Gateway *notify.Gateway
}

func NewAdminHandler(res *service.ReservationService, auth *service.AuthService, gw *notify.Gateway) *AdminHandler {
	return &AdminHandler{Res: res, Auth: auth, Gateway: gw}
}

// ----- DTOs -----

type statusUpdateReq struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Cancelled"`
}

type emailTestReq struct {
	To string `json:"to" validate:"omitempty,email"`
}


// Stats returns the dashboard aggregate.
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	st, err := h.Res.GetStats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load stats failed"})
	}
	return c.JSON(http.StatusOK, st)
}

// Users lists every registered account.
func (h *AdminHandler) Users(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Auth.Users(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load users failed"})
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// TableBookings returns every table booking, newest first.
func (h *AdminHandler) TableBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tables, err := h.Res.AllTableBookings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].CreatedAt > tables[j].CreatedAt })
	if tables == nil {
		tables = []model.TableBooking{}
	}
	return c.JSON(http.StatusOK, tables)
}

// RoomBookings returns every room booking, newest first.
func (h *AdminHandler) RoomBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Res.AllRoomBookings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].CreatedAt > rooms[j].CreatedAt })
	if rooms == nil {
		rooms = []model.RoomBooking{}
	}
	return c.JSON(http.StatusOK, rooms)
}

// UpdateTableStatus overwrites the status of a table booking.  An unknown id
// succeeds without changing anything, matching the store's no-op contract.
func (h *AdminHandler) UpdateTableStatus(c echo.Context) error {
	id := c.Param("id")
	var req statusUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Res.UpdateTableStatus(ctx, id, model.BookingStatus(req.Status)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": req.Status})
}

// UpdateRoomStatus is the room-booking counterpart of UpdateTableStatus.
func (h *AdminHandler) UpdateRoomStatus(c echo.Context) error {
	id := c.Param("id")
	var req statusUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Res.UpdateRoomStatus(ctx, id, model.BookingStatus(req.Status)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": req.Status})
}

// EmailTest sends a test message through the configured provider and reports
// the outcome.  Always 200: the result payload carries success/failure.
func (h *AdminHandler) EmailTest(c echo.Context) error {
	var req emailTestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	return c.JSON(http.StatusOK, h.Gateway.TestProbe(ctx, req.To))
}
