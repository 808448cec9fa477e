package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	confirmationPrefix = "ledger:confirm:"
)

// CachedConfirmation is a finalized ledger verdict for one transaction.
type CachedConfirmation struct {
	Success bool `json:"success"`
	// Nonce is the settlement authorization a successful transaction carried.
	Nonce       string `json:"nonce,omitempty"`
	FinalizedAt int64  `json:"finalized_at,omitempty"` // Unix milliseconds
}

// ConfirmCache remembers finalized ledger confirmations by tx hash so a
// repeated Pay sees the verdict the first one saw.
type ConfirmCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewConfirmCache(client *redis.Client, ttl time.Duration) *ConfirmCache {
	return &ConfirmCache{client: client, ttl: ttl}
}

// Get returns nil, nil on a miss.
func (c *ConfirmCache) Get(ctx context.Context, txHash string) (*CachedConfirmation, error) {
	raw, err := c.client.Get(ctx, confirmationPrefix+txHash).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read confirmation: %w", err)
	}

	var conf CachedConfirmation
	if err := json.Unmarshal(raw, &conf); err != nil {
		return nil, fmt.Errorf("failed to decode confirmation: %w", err)
	}
	return &conf, nil
}

// Put stores conf unless a verdict for txHash is already cached.
func (c *ConfirmCache) Put(ctx context.Context, txHash string, conf CachedConfirmation) error {
	raw, err := json.Marshal(conf)
	if err != nil {
		return fmt.Errorf("failed to encode confirmation: %w", err)
	}
	if err := c.client.SetNX(ctx, confirmationPrefix+txHash, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store confirmation: %w", err)
	}
	return nil
}
