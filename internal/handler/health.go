package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is used by load balancers and monitoring to check the process is up.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Root answers the bare API address.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "EventSphere API is running")
}
