// Package handler contains the mock backend's echo handlers. They talk to
// the in-memory store directly; the backend exists to exercise the client
// against a faithful wire contract, not to be a production service.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/markethub/storefront-core/internal/mockapi/memstore"
)

type AuthHandler struct {
	store  *memstore.Store
	tokens *TokenIssuer
}

func NewAuthHandler(store *memstore.Store, tokens *TokenIssuer) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

// Register creates an account and returns the token pair, logging the user
// in immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user, err := h.store.CreateUser(req.Name, req.Email, string(hash), false)
	if err != nil {
		if errors.Is(err, memstore.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "user with this email already exists"})
		}
		return err
	}

	return h.respondWithTokens(c, http.StatusCreated, user)
}

// Login authenticates by email and password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.store.UserByEmail(req.Email)
	if err != nil {
		// Same response as a wrong password so probes cannot enumerate emails.
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}

	return h.respondWithTokens(c, http.StatusOK, user)
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	userID, err := h.tokens.VerifyRefresh(req.Refresh)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid refresh token"})
	}
	user, err := h.store.UserByID(userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid refresh token"})
	}

	access, _, err := h.tokens.Pair(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refreshResponse{Access: access})
}

func (h *AuthHandler) respondWithTokens(c echo.Context, status int, user *memstore.User) error {
	access, refresh, err := h.tokens.Pair(user)
	if err != nil {
		return err
	}
	return c.JSON(status, authResponse{
		User:    userToResponse(user),
		Access:  access,
		Refresh: refresh,
	})
}
