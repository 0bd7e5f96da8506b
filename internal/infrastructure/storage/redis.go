package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/markethub/storefront-core/internal/core/domain"
	"github.com/markethub/storefront-core/internal/core/ports"
)

const (
	redisKeyPrefix = "storefront:session:"
	redisTimeout   = 5 * time.Second
)

var _ ports.SessionStorage = (*RedisStorage)(nil)

// RedisStorage keeps the session record in redis under the same fixed keys
// as FileStorage. Intended for server-side deployments of the storefront
// core where the session must survive the process and be shared between
// replicas.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage connects to redis and validates connectivity with a ping.
func NewRedisStorage(ctx context.Context, addr string, db int) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("storage: redis ping: %w", err)
	}
	return &RedisStorage{client: client}, nil
}

// Close releases the underlying connection pool.
func (s *RedisStorage) Close() error {
	return s.client.Close()
}

func (s *RedisStorage) AccessToken() string {
	return s.get(keyAccessToken)
}

func (s *RedisStorage) RefreshToken() string {
	return s.get(keyRefreshToken)
}

func (s *RedisStorage) SetTokens(access, refresh string) error {
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Set(ctx, redisKeyPrefix+keyAccessToken, access, 0).Err(); err != nil {
		return fmt.Errorf("storage: set access token: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+keyRefreshToken, refresh, 0).Err(); err != nil {
		return fmt.Errorf("storage: set refresh token: %w", err)
	}
	return nil
}

func (s *RedisStorage) SetAccessToken(access string) error {
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Set(ctx, redisKeyPrefix+keyAccessToken, access, 0).Err(); err != nil {
		return fmt.Errorf("storage: set access token: %w", err)
	}
	return nil
}

func (s *RedisStorage) LoadUser() (*domain.User, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	raw, err := s.client.Get(ctx, redisKeyPrefix+keyUser).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: load user: %w", err)
	}
	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("storage: decode user: %w", err)
	}
	return &u, nil
}

func (s *RedisStorage) SaveUser(u *domain.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("storage: encode user: %w", err)
	}
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Set(ctx, redisKeyPrefix+keyUser, raw, 0).Err(); err != nil {
		return fmt.Errorf("storage: save user: %w", err)
	}
	return nil
}

func (s *RedisStorage) ClearTokens() error {
	ctx, cancel := s.ctx()
	defer cancel()
	err := s.client.Del(ctx, redisKeyPrefix+keyAccessToken, redisKeyPrefix+keyRefreshToken).Err()
	if err != nil {
		return fmt.Errorf("storage: clear tokens: %w", err)
	}
	return nil
}

func (s *RedisStorage) Clear() error {
	ctx, cancel := s.ctx()
	defer cancel()
	err := s.client.Del(ctx,
		redisKeyPrefix+keyAccessToken,
		redisKeyPrefix+keyRefreshToken,
		redisKeyPrefix+keyUser,
	).Err()
	if err != nil {
		return fmt.Errorf("storage: clear session: %w", err)
	}
	return nil
}

func (s *RedisStorage) get(key string) string {
	ctx, cancel := s.ctx()
	defer cancel()
	val, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		return ""
	}
	return val
}

func (s *RedisStorage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), redisTimeout)
}
