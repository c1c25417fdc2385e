// Package cache stores normalized link previews in Redis.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/linkbook/internal/config"
	"github.com/heartmarshall/linkbook/internal/domain"
)

const previewKeyPrefix = "linkbook:preview:"

func previewKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return previewKeyPrefix + hex.EncodeToString(sum[:])
}

// NewClient connects to Redis and verifies the connection with PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		Protocol: 2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// PreviewCache keeps previews keyed by link URL for a fixed TTL.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a cache over an existing client.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	return &PreviewCache{client: client, ttl: ttl}
}

// Get returns the cached preview for url. A miss is (nil, false, nil).
func (c *PreviewCache) Get(ctx context.Context, url string) (*domain.OGPreview, bool, error) {
	raw, err := c.client.Get(ctx, previewKey(url)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get preview: %w", err)
	}

	var p domain.OGPreview
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false, fmt.Errorf("cache: decode preview: %w", err)
	}
	return &p, true, nil
}

// Set stores p for url.
func (c *PreviewCache) Set(ctx context.Context, url string, p *domain.OGPreview) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache: encode preview: %w", err)
	}
	if err := c.client.Set(ctx, previewKey(url), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set preview: %w", err)
	}
	return nil
}

// Ping checks the connection; used by readiness probes.
func (c *PreviewCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
