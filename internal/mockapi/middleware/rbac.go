package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StaffOnly rejects callers whose token does not carry the staff flag. It
// must run after Auth.
func StaffOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isStaff, _ := c.Get(CtxIsStaff).(bool)
			if !isStaff {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
