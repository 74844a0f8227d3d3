package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// HeaderUserID identifies the acting user on item and booking routes.
const HeaderUserID = "X-Sharer-User-Id"

func actorID(c echo.Context) (uint, error) {
	raw := c.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "X-Sharer-User-Id header is required")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid X-Sharer-User-Id header")
	}
	return uint(id), nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
