package middleware

import (
	"net/http"

	"github.com/itemshare/rental-service/internal/apperr"
	"github.com/labstack/echo/v4"
)

// ErrorHandler maps domain failures onto HTTP statuses in one place so
// handlers can return service errors untranslated.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		code = http.StatusNotFound
	case apperr.KindForbidden:
		code = http.StatusForbidden
	case apperr.KindValidation:
		code = http.StatusBadRequest
	case apperr.KindConflict:
		code = http.StatusConflict
	default:
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		}
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}
