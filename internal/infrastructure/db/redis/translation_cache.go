package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 15 * time.Minute

// TranslationCache stores full translation tables in Redis so language
// switches do not hit MongoDB on every request.
// Key format: translations:<lang>
type TranslationCache struct {
	client *redis.Client
}

// NewTranslationCache creates a TranslationCache wrapping the given Redis client.
func NewTranslationCache(client *redis.Client) *TranslationCache {
	return &TranslationCache{client: client}
}

// Get returns the cached table for lang, or (nil, nil) on a miss.
func (c *TranslationCache) Get(ctx context.Context, lang string) (map[string]string, error) {
	raw, err := c.client.Get(ctx, c.key(lang)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("translation cache get: %w", err)
	}

	var msgs map[string]string
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, fmt.Errorf("translation cache decode: %w", err)
	}
	return msgs, nil
}

// Set stores the table for lang (expires after cacheTTL).
func (c *TranslationCache) Set(ctx context.Context, lang string, messages map[string]string) error {
	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("translation cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(lang), raw, cacheTTL).Err()
}

func (c *TranslationCache) key(lang string) string {
	return "translations:" + lang
}
