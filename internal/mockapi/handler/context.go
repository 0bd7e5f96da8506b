package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markethub/storefront-core/internal/mockapi/middleware"
)

// identity is the caller identity injected by the Auth middleware.
type identity struct {
	UserID  string
	Name    string
	Email   string
	IsStaff bool
}

// ctxIdentity extracts the auth claims and fast-fails before any store call:
// a missing subject proves the middleware did not run on this route.
func ctxIdentity(c echo.Context) (identity, error) {
	id := identity{}
	id.UserID, _ = c.Get(middleware.CtxUserID).(string)
	if id.UserID == "" {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	id.Name, _ = c.Get(middleware.CtxName).(string)
	id.Email, _ = c.Get(middleware.CtxEmail).(string)
	id.IsStaff, _ = c.Get(middleware.CtxIsStaff).(bool)
	return id, nil
}
