package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ZaguanLabs/isoglot"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists glossary snapshots in Redis, keyed by session id, so
// the accumulated translation memory survives across texts and processes.
type RedisStore struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
}

// RedisConfig holds configuration for the Redis store.
type RedisConfig struct {
	URL       string // Redis connection URL (e.g., "redis://localhost:6379")
	TTL       int    // TTL in seconds (0 = no expiration)
	KeyPrefix string // Prefix for all keys (default: "isoglot:")
}

// NewRedisStore creates a new Redis store with the given configuration.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisStoreFromClient(client, cfg.TTL, cfg.KeyPrefix), nil
}

// NewRedisStoreFromClient creates a RedisStore from an existing Redis
// client.
func NewRedisStoreFromClient(client *redis.Client, ttlSeconds int, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "isoglot:"
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}

	return &RedisStore{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
	}
}

// Save stores the glossary snapshot under the session id.
func (s *RedisStore) Save(ctx context.Context, session string, g *isoglot.Glossary) error {
	data, err := json.Marshal(Snapshot(g))
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return s.client.Set(ctx, s.keyPrefix+session, data, s.ttl).Err()
}

// Load reads the snapshot for the session id and applies it to the
// glossary. A missing session yields an empty result, not an error.
func (s *RedisStore) Load(ctx context.Context, session string, g *isoglot.Glossary) (*ApplyResult, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+session).Bytes()
	if err == redis.Nil {
		return &ApplyResult{}, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return Apply(g, rows), nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping tests the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
