package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports liveness.  No store round-trip: the process being able to
// serve the request is the signal.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
