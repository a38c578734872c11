package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks live login sessions by JWT id so logout can revoke
// a token before it expires.
type TokenStore interface {
	Put(ctx context.Context, jti string, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
	Delete(ctx context.Context, jti string) error
}

// memoryTokenStore is the single-process default: a guarded map, same as
// the in-memory login-token cache this service grew out of. Fine for one
// process; a multi-process deployment should use the Redis store.
type memoryTokenStore struct {
	mu      sync.Mutex
	expires map[string]time.Time
}

func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{expires: map[string]time.Time{}}
}

func (s *memoryTokenStore) Put(_ context.Context, jti string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expires[jti] = time.Now().Add(ttl)
	return nil
}

func (s *memoryTokenStore) Exists(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.expires[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(exp) {
		delete(s.expires, jti)
		return false, nil
	}
	return true, nil
}

func (s *memoryTokenStore) Delete(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.expires, jti)
	return nil
}

const sessionKeyPrefix = "session:"

type redisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore backs sessions with Redis so every process sees the
// same login state.
func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Put(ctx context.Context, jti string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+jti, "1", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Delete(ctx context.Context, jti string) error {
	return s.client.Del(ctx, sessionKeyPrefix+jti).Err()
}
