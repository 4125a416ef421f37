package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/himalayancrown/hotel-reservation/internal/model"
	"github.com/himalayancrown/hotel-reservation/internal/service"
)

// CatalogHandler serves the public menu and room type listings plus the
// admin-only catalog mutations.
type CatalogHandler struct {
	Catalog *service.CatalogService
}

func NewCatalogHandler(cat *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// ----- DTOs -----

type menuItemReq struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type roomTypeReq struct {
	Name          string   `json:"type" validate:"required"`
	PricePerNight float64  `json:"pricePerNight" validate:"required,gt=0"`
	Image         string   `json:"image"`
	Capacity      int      `json:"capacity" validate:"required,min=1"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
}

// Menu lists the restaurant menu.  Public, cacheable.
func (h *CatalogHandler) Menu(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Catalog.Menu(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load menu failed"})
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// Rooms lists the bookable room types.  Public, cacheable.
func (h *CatalogHandler) Rooms(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Catalog.RoomTypes(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load rooms failed"})
	}
	if rooms == nil {
		rooms = []model.RoomType{}
	}
	return c.JSON(http.StatusOK, rooms)
}

// AddMenuItem appends a new menu item with a generated id.
func (h *CatalogHandler) AddMenuItem(c echo.Context) error {
	var req menuItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	item, err := h.Catalog.AddMenuItem(ctx, model.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add menu item failed"})
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem merges partial fields into an existing menu item.
func (h *CatalogHandler) UpdateMenuItem(c echo.Context) error {
	var patch service.MenuItemPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Catalog.UpdateMenuItem(ctx, c.Param("id"), patch); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update menu item failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteMenuItem removes a menu item by id.
func (h *CatalogHandler) DeleteMenuItem(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Catalog.DeleteMenuItem(ctx, c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete menu item failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// AddRoomType appends a new room type with a generated id.
func (h *CatalogHandler) AddRoomType(c echo.Context) error {
	var req roomTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rt, err := h.Catalog.AddRoomType(ctx, model.RoomType{
		Name:          req.Name,
		PricePerNight: req.PricePerNight,
		Image:         req.Image,
		Capacity:      req.Capacity,
		Description:   req.Description,
		Amenities:     req.Amenities,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add room type failed"})
	}
	return c.JSON(http.StatusCreated, rt)
}

// UpdateRoomType merges partial fields into an existing room type.
func (h *CatalogHandler) UpdateRoomType(c echo.Context) error {
	var patch service.RoomTypePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Catalog.UpdateRoomType(ctx, c.Param("id"), patch); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update room type failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteRoomType removes a room type by id.  Existing bookings keep their
// denormalized type name and price.
func (h *CatalogHandler) DeleteRoomType(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Catalog.DeleteRoomType(ctx, c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete room type failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
