package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root answers GET / with the liveness banner clients already expect.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Sports Club server is active now...!")
}

// Health is the plain "ok" check used by load balancers.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
