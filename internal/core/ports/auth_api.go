package ports

import (
	"context"

	"github.com/markethub/storefront-core/internal/core/domain"
)

// RegisterInput carries the fields of the registration form.
type RegisterInput struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// AuthResult is the backend's auth envelope: the account plus a fresh
// access/refresh token pair.
type AuthResult struct {
	User    domain.User
	Access  string
	Refresh string
}

// AuthAPI is the remote authentication contract (/auth/*).
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
}
