package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ErrorHandler renders every error as {"message": ...} so staff dashboards,
// guest pages and the admin console all parse failures the same way.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	switch he := err.(type) {
	case *echo.HTTPError:
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	default:
		// repository errors that escape a handler unmapped
		if errors.Is(err, gorm.ErrRecordNotFound) {
			code = http.StatusNotFound
			msg = "not found"
		}
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}
