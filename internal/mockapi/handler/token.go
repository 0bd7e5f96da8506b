package handler

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/markethub/storefront-core/internal/mockapi/memstore"
)

var errInvalidRefreshToken = errors.New("invalid refresh token")

// TokenIssuer mints and verifies the HS256 token pair. Access tokens carry
// the caller's identity claims; refresh tokens carry only the subject plus a
// "typ" discriminator so they cannot be replayed as access tokens.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Pair mints an access and refresh token for the user.
func (t *TokenIssuer) Pair(u *memstore.User) (access, refresh string, err error) {
	now := time.Now()

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      u.ID,
		"name":     u.Name,
		"email":    u.Email,
		"is_staff": u.IsStaff,
		"iat":      now.Unix(),
		"exp":      now.Add(t.accessTTL).Unix(),
	}).SignedString(t.secret)
	if err != nil {
		return "", "", err
	}

	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.ID,
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(t.refreshTTL).Unix(),
	}).SignedString(t.secret)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// VerifyRefresh checks a refresh token and returns its subject.
func (t *TokenIssuer) VerifyRefresh(raw string) (userID string, err error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", errInvalidRefreshToken
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", errInvalidRefreshToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errInvalidRefreshToken
	}
	return sub, nil
}
