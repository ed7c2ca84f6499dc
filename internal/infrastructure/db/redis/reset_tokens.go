package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lutfi-tyo14/blog-gunungagung/internal/core/domain"
)

const defaultResetTTL = time.Hour

// ResetTokenStore keeps password-reset tokens in Redis with a TTL.
// Key format: reset:<token> -> email
type ResetTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResetTokenStore creates a ResetTokenStore wrapping the given client.
// If ttl <= 0, defaultResetTTL is used.
func NewResetTokenStore(client *redis.Client, ttl time.Duration) *ResetTokenStore {
	if ttl <= 0 {
		ttl = defaultResetTTL
	}
	return &ResetTokenStore{client: client, ttl: ttl}
}

// Save records the token for email; it expires on its own after the TTL.
func (s *ResetTokenStore) Save(ctx context.Context, token, email string) error {
	if err := s.client.Set(ctx, s.key(token), email, s.ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

// Consume atomically fetches and deletes the token so it cannot be replayed.
// Unknown or expired tokens report domain.ErrInvalidResetToken.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (string, error) {
	email, err := s.client.GetDel(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidResetToken
		}
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	return email, nil
}

func (s *ResetTokenStore) key(token string) string {
	return "reset:" + token
}
