package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"salesdash-backend/internal/config"
)

// ErrNoCredential is returned by a backend when the storage key is empty.
var ErrNoCredential = errors.New("no stored credential")

// Backend persists the bearer credential under one fixed key.
type Backend interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}

// RedisBackend stores the credential in Redis so it survives restarts
// and is visible to every gateway replica.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend connects to Redis and pings it. Callers fall back to the
// in-memory backend when this fails.
func NewRedisBackend(cfg *config.Config) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisBackend{client: client, key: cfg.Session.StorageKey}, nil
}

func (b *RedisBackend) Load(ctx context.Context) (string, error) {
	val, err := b.client.Get(ctx, b.key).Result()
	if err == redis.Nil {
		return "", ErrNoCredential
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (b *RedisBackend) Save(ctx context.Context, credential string) error {
	// No TTL: expiry is embedded in the credential itself.
	return b.client.Set(ctx, b.key, credential, 0).Err()
}

func (b *RedisBackend) Clear(ctx context.Context) error {
	return b.client.Del(ctx, b.key).Err()
}

// IsHealthy returns true if the Redis connection is working.
func (b *RedisBackend) IsHealthy() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return b.client.Ping(ctx).Err() == nil
}

// MemoryBackend keeps the credential in process memory. Used when Redis is
// unavailable and in tests.
type MemoryBackend struct {
	mu         sync.Mutex
	credential string
	set        bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(_ context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.set {
		return "", ErrNoCredential
	}
	return b.credential, nil
}

func (b *MemoryBackend) Save(_ context.Context, credential string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.credential = credential
	b.set = true
	return nil
}

func (b *MemoryBackend) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.credential = ""
	b.set = false
	return nil
}

// IsHealthy always succeeds; in-process storage has no failure mode worth
// reporting.
func (b *MemoryBackend) IsHealthy() bool { return true }
