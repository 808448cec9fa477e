package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	settlementNoncePrefix = "settlement:nonce:"
)

// ErrNonceTaken is returned when a settlement nonce has already been issued.
var ErrNonceTaken = errors.New("settlement nonce already issued")

// NonceStore reserves settlement nonces so an artifact nonce is never issued
// twice. A reservation outlives the artifact it was issued for.
type NonceStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNonceStore(client *redis.Client, ttl time.Duration) *NonceStore {
	return &NonceStore{client: client, ttl: ttl}
}

// Reserve claims nonce for ticketID with SETNX.
func (s *NonceStore) Reserve(ctx context.Context, nonce, ticketID string) error {
	ok, err := s.client.SetNX(ctx, settlementNoncePrefix+nonce, ticketID, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve settlement nonce: %w", err)
	}
	if !ok {
		return ErrNonceTaken
	}
	return nil
}

// Owner returns the ticket a nonce was reserved for, or "" if it is unknown
// or expired.
func (s *NonceStore) Owner(ctx context.Context, nonce string) (string, error) {
	ticketID, err := s.client.Get(ctx, settlementNoncePrefix+nonce).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read settlement nonce: %w", err)
	}
	return ticketID, nil
}
