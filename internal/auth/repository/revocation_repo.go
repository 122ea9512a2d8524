package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key for a revoked token: auth:revoked:{jti}
const revokedKeyPrefix = "auth:revoked:"

// RevocationRepository records revoked token ids in Redis until the token
// would have expired anyway.
type RevocationRepository struct {
	client *redis.Client
	now    func() time.Time
}

func NewRevocationRepository(client *redis.Client) *RevocationRepository {
	return &RevocationRepository{client: client, now: time.Now}
}

func (r *RevocationRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return fmt.Errorf("token id required")
	}
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *RevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	n, err := r.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revocation: %w", err)
	}
	return n > 0, nil
}

// NoopRevocation is used when Redis is not configured; tokens stay valid
// until they expire.
type NoopRevocation struct{}

func (NoopRevocation) Revoke(context.Context, string, time.Time) error { return nil }

func (NoopRevocation) IsRevoked(context.Context, string) (bool, error) { return false, nil }
