// Package middleware holds the mock backend's echo middleware: bearer-token
// authentication and the staff-only guard.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys populated by Auth.
const (
	CtxUserID  = "user_id"
	CtxName    = "name"
	CtxEmail   = "email"
	CtxIsStaff = "is_staff"
)

// Auth validates the access JWT and injects the caller's identity into the
// echo context. Refresh tokens are rejected here; they are only accepted by
// the refresh endpoint.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if typ, _ := claims["typ"].(string); typ == "refresh" {
				return echo.NewHTTPError(http.StatusUnauthorized, "refresh token not accepted here")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			c.Set(CtxUserID, sub)
			c.Set(CtxName, claims["name"])
			c.Set(CtxEmail, claims["email"])
			isStaff, _ := claims["is_staff"].(bool)
			c.Set(CtxIsStaff, isStaff)

			return next(c)
		}
	}
}
