package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked:"

// RedisRevocationStore keeps one key per revoked token id, expiring when
// the token itself would have expired.
type RedisRevocationStore struct {
	client *redis.Client
	prefix string
}

// NewRedisRevocationStore connects to redisURL and checks it answers PING.
func NewRedisRevocationStore(ctx context.Context, redisURL string) (*RedisRevocationStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisRevocationStoreWithClient(client), nil
}

func NewRedisRevocationStoreWithClient(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, prefix: revokedKeyPrefix}
}

func (s *RedisRevocationStore) key(jti string) string {
	return s.prefix + jti
}

// Revoke marks jti revoked until the given time. Tokens already past their
// expiry need no entry.
func (s *RedisRevocationStore) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, s.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := s.client.Get(ctx, s.key(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup revoked token: %w", err)
	}
	return true, nil
}

func (s *RedisRevocationStore) Close() error {
	return s.client.Close()
}

// MemoryRevocationStore is used when no Redis URL is configured. Revocations
// are lost on restart.
type MemoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{revoked: make(map[string]time.Time), now: time.Now}
}

func (s *MemoryRevocationStore) Revoke(_ context.Context, jti string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !until.After(now) {
		return nil
	}
	s.revoked[jti] = until

	// drop expired entries while we hold the lock
	for id, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, id)
		}
	}
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[jti]
	return ok && until.After(s.now()), nil
}
