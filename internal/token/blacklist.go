package token

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Blacklist records revoked token ids until their natural expiration.
type Blacklist interface {
	Revoke(jti string, until time.Time)
	IsRevoked(jti string) bool
}

// MemoryBlacklist is a process-local Blacklist. Suitable for a single server
// instance; use RedisBlacklist when running more than one.
type MemoryBlacklist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

// NewMemoryBlacklist creates an in-memory Blacklist.
func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{entries: map[string]time.Time{}}
}

// Revoke records the token id until the given time.
func (b *MemoryBlacklist) Revoke(jti string, until time.Time) {
	if time.Until(until) <= 0 {
		return
	}
	b.mu.Lock()
	b.entries[jti] = until
	b.mu.Unlock()
}

// IsRevoked checks whether the token id was revoked before expiring.
func (b *MemoryBlacklist) IsRevoked(jti string) bool {
	b.mu.RLock()
	until, ok := b.entries[jti]
	b.mu.RUnlock()
	if !ok {
		return false
	}

	if time.Now().After(until) {
		b.mu.Lock()
		delete(b.entries, jti)
		b.mu.Unlock()
		return false
	}
	return true
}

// RedisBlacklist stores revoked token ids in Redis with a TTL so revocation
// survives restarts and is shared across instances.
type RedisBlacklist struct {
	client *redis.Client
}

// NewRedisBlacklist creates a Redis-backed Blacklist.
func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{client: client}
}

func blacklistKey(jti string) string {
	return "jwt:blacklist:" + jti
}

// Revoke records the token id until the given time.
func (b *RedisBlacklist) Revoke(jti string, until time.Time) {
	ttl := time.Until(until)
	if ttl <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = b.client.Set(ctx, blacklistKey(jti), "1", ttl).Err()
}

// IsRevoked checks whether the token id was revoked before expiring. Redis
// errors fail open to avoid locking every caller out.
func (b *RedisBlacklist) IsRevoked(jti string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n, err := b.client.Exists(ctx, blacklistKey(jti)).Result()
	if err != nil {
		return false
	}
	return n > 0
}
