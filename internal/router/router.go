package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/himalayancrown/hotel-reservation/internal/handler"
	"github.com/himalayancrown/hotel-reservation/internal/middleware"
	"github.com/himalayancrown/hotel-reservation/internal/model"
)

// Handlers collects everything the route table needs.
type Handlers struct {
	Auth    *handler.AuthHandler
	Booking *handler.BookingHandler
	Catalog *handler.CatalogHandler
	Admin   *handler.AdminHandler
}

// Middlewares holds the optional cross-cutting middleware.  Nil entries are
// skipped, so environments without Redis simply run without cache or rate
// limiting.
type Middlewares struct {
	Cache     echo.MiddlewareFunc
	RateLimit echo.MiddlewareFunc
}

// Register wires the full route table onto the provided Echo instance.
//
// Layout:
//
//	/healthz, /metrics            - operational, unauthenticated
//	/v1/auth/*                    - register/login/logout/session
//	/v1/menu, /v1/rooms           - public catalog (cached, rate limited)
//	/v1/* (JWT, guest|admin)      - booking endpoints, /v1/me
//	/v1/admin/* (JWT, admin)      - stats, users, bookings, catalog CRUD
func Register(e *echo.Echo, h Handlers, mw Middlewares, jwtSecret string) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Register and login carry no JWT: they issue the token.  Logout does,
	// matching the rest of the authenticated surface.
	ag := e.Group("/v1/auth")
	if mw.RateLimit != nil {
		ag.Use(mw.RateLimit)
	}
	ag.POST("/register", h.Auth.Register)
	ag.POST("/login", h.Auth.Login)
	ag.GET("/session", h.Auth.Session)
	ag.POST("/logout", h.Auth.Logout, middleware.JWTAuth(jwtSecret))

	// Public catalog reads.  Cached responses sit in front of the store.
	pub := e.Group("/v1")
	if mw.RateLimit != nil {
		pub.Use(mw.RateLimit)
	}
	if mw.Cache != nil {
		pub.Use(mw.Cache)
	}
	pub.GET("/menu", h.Catalog.Menu)
	pub.GET("/rooms", h.Catalog.Rooms)

	// Authenticated guest surface.  Admins can book too.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleGuest, model.RoleAdmin))
	auth.GET("/me", h.Auth.Me)
	auth.POST("/bookings/tables", h.Booking.CreateTable)
	auth.POST("/bookings/rooms", h.Booking.CreateRoom)
	auth.GET("/my/bookings/tables", h.Booking.MyTableBookings)
	auth.GET("/my/bookings/rooms", h.Booking.MyRoomBookings)

	// Management console.
	adm := e.Group("/v1/admin")
	adm.Use(middleware.JWTAuth(jwtSecret))
	adm.Use(middleware.RequireRole(model.RoleAdmin))
	adm.GET("/stats", h.Admin.Stats)
	adm.GET("/users", h.Admin.Users)
	adm.GET("/bookings/tables", h.Admin.TableBookings)
	adm.GET("/bookings/rooms", h.Admin.RoomBookings)
	adm.PATCH("/bookings/tables/:id/status", h.Admin.UpdateTableStatus)
	adm.PATCH("/bookings/rooms/:id/status", h.Admin.UpdateRoomStatus)
	adm.POST("/email-test", h.Admin.EmailTest)

	adm.POST("/menu", h.Catalog.AddMenuItem)
	adm.PUT("/menu/:id", h.Catalog.UpdateMenuItem)
	adm.DELETE("/menu/:id", h.Catalog.DeleteMenuItem)
	adm.POST("/rooms", h.Catalog.AddRoomType)
	adm.PUT("/rooms/:id", h.Catalog.UpdateRoomType)
	adm.DELETE("/rooms/:id", h.Catalog.DeleteRoomType)
}
