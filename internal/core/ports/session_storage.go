package ports

import "github.com/markethub/storefront-core/internal/core/domain"

// SessionStorage is the durable client-side session record: the token pair
// plus the serialized user, stored under fixed keys and readable
// synchronously at process start.
//
// Token reads are deliberately infallible — a missing or unreadable value
// reads as "", which every consumer treats as "not authenticated".
type SessionStorage interface {
	AccessToken() string
	RefreshToken() string
	SetTokens(access, refresh string) error
	// SetAccessToken replaces only the access token, keeping the refresh
	// token. Used by the refresh flow.
	SetAccessToken(access string) error
	LoadUser() (*domain.User, error)
	SaveUser(u *domain.User) error
	// ClearTokens removes both tokens but keeps the user record. Used when
	// a refresh fails and the caller must re-login.
	ClearTokens() error
	// Clear removes the tokens and the user record. Idempotent.
	Clear() error
}
