package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/markethub/storefront-core/internal/core/domain"
	"github.com/markethub/storefront-core/internal/core/ports"
)

// AuthClient implements ports.AuthAPI against /auth/*.
type AuthClient struct {
	http *Client
}

func NewAuthClient(http *Client) *AuthClient {
	return &AuthClient{http: http}
}

// Login obtains a token pair for an existing account.
func (c *AuthClient) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	var out authEnvelope
	err := c.http.do(ctx, http.MethodPost, "/auth/login/", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, fmt.Errorf("login: %w", domain.ErrInvalidCredentials)
		}
		return nil, err
	}
	return &ports.AuthResult{
		User:    userFromPayload(out.User),
		Access:  out.Access,
		Refresh: out.Refresh,
	}, nil
}

// Register creates an account and obtains its first token pair.
func (c *AuthClient) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	var out authEnvelope
	req := registerRequest{Name: in.Name, Email: in.Email, Password: in.Password}
	err := c.http.do(ctx, http.MethodPost, "/auth/register/", req, &out)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
			return nil, fmt.Errorf("register: %s: %w", apiErr.Message, domain.ErrUserExists)
		}
		return nil, err
	}
	return &ports.AuthResult{
		User:    userFromPayload(out.User),
		Access:  out.Access,
		Refresh: out.Refresh,
	}, nil
}
