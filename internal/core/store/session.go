package store

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/markethub/storefront-core/internal/core/domain"
	"github.com/markethub/storefront-core/internal/core/ports"
)

// SessionStore holds the current user and drives request authorization via
// the durable session record. It performs no network calls: its only side
// effect is reading and writing SessionStorage.
type SessionStore struct {
	mu      sync.RWMutex
	user    *domain.User
	storage ports.SessionStorage
	log     zerolog.Logger
}

// NewSessionStore builds the store and rehydrates the user synchronously
// from storage, so the first outgoing request already carries the right
// credentials.
func NewSessionStore(storage ports.SessionStorage, log zerolog.Logger) *SessionStore {
	s := &SessionStore{storage: storage, log: log}
	u, err := storage.LoadUser()
	if err != nil {
		log.Warn().Err(err).Msg("session: could not rehydrate user")
	} else if u != nil {
		u.DeriveRole()
		s.user = u
	}
	return s
}

// Current returns a snapshot of the logged-in user, or nil.
func (s *SessionStore) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser replaces the current user. A non-nil user is persisted to storage;
// nil clears both the in-memory user and the stored record.
func (s *SessionStore) SetUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		s.user = nil
		if err := s.storage.Clear(); err != nil {
			s.log.Warn().Err(err).Msg("session: clear failed")
		}
		return
	}

	clone := *u
	clone.DeriveRole()
	s.user = &clone
	if err := s.storage.SaveUser(&clone); err != nil {
		s.log.Warn().Err(err).Msg("session: persist user failed")
	}
}

// Establish stores a full login/register result: tokens first (so the next
// request is authorized), then the user record.
func (s *SessionStore) Establish(res *ports.AuthResult) {
	if res == nil {
		return
	}
	if err := s.storage.SetTokens(res.Access, res.Refresh); err != nil {
		s.log.Warn().Err(err).Msg("session: persist tokens failed")
	}
	u := res.User
	s.SetUser(&u)
}

// Logout clears the user, the access token and the refresh token. Idempotent.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.storage.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("session: clear failed")
	}
	s.log.Debug().Msg("session: logged out")
}

// Authenticated reports whether an access token is currently stored.
// Token presence, not validity, selects the cart mode — an expired token
// is discovered through a 401 and the refresh flow.
func (s *SessionStore) Authenticated() bool {
	return s.storage.AccessToken() != ""
}

// TokenExpiry returns the exp claim of the stored access token without
// verifying its signature. The zero time means no token or no usable claim.
func (s *SessionStore) TokenExpiry() time.Time {
	raw := s.storage.AccessToken()
	if raw == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
