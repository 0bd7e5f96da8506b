package domain

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrItemNotFound       = errors.New("cart item not found")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")

	// ErrSessionExpired is returned when a request failed with 401 and the
	// token refresh either was not possible or failed too. The session
	// observer should react by logging out.
	ErrSessionExpired = errors.New("session expired")

	// ErrNoSession is returned by authenticated-only operations when no
	// refresh token is stored at all.
	ErrNoSession = errors.New("no active session")

	// ErrItemRefKind is returned when a cart item reference does not match
	// the cart mode: guest carts are addressed by product id, authenticated
	// carts by server item id.
	ErrItemRefKind = errors.New("item reference kind does not match cart mode")
)
