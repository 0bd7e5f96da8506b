package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/markethub/storefront-core/internal/core/domain"
	"github.com/markethub/storefront-core/internal/core/ports"
	"github.com/markethub/storefront-core/internal/core/store"
)

// AuthService drives login, registration and logout against the remote auth
// endpoints and establishes the local session on success.
type AuthService struct {
	api      ports.AuthAPI
	session  *store.SessionStore
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthService(api ports.AuthAPI, session *store.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{api: api, session: session, validate: validator.New(), log: log}
}

// Login authenticates and establishes the session (tokens persisted, user
// set) before returning the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.session.Establish(res)
	s.log.Info().Str("email", res.User.Email).Str("role", res.User.Role).Msg("logged in")
	u := res.User
	return &u, nil
}

// Register creates an account and establishes the session, mirroring Login.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	res, err := s.api.Register(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.session.Establish(res)
	s.log.Info().Str("email", res.User.Email).Msg("registered")
	u := res.User
	return &u, nil
}

// Logout tears down the local session. No network call is made.
func (s *AuthService) Logout() {
	s.session.Logout()
}
