package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/tkoskela/libpay/internal/pkg/database"
	"github.com/tkoskela/libpay/internal/pkg/models"
)

const policyKeyPrefix = "libpay:policy:"

// policyTTL keeps cached policies short-lived; policy changes in the ILS
// must take effect within minutes, not hours
const policyTTL = 5 * time.Minute

// RedisPolicyCache implements the payment.PolicyCache interface
type RedisPolicyCache struct {
	redisClient *database.RedisClient
}

// NewRedisPolicyCache creates a new Redis-backed policy cache
func NewRedisPolicyCache(redisClient *database.RedisClient) *RedisPolicyCache {
	return &RedisPolicyCache{
		redisClient: redisClient,
	}
}

// GetPolicy returns the cached online-payment policy for a card username,
// or nil on a cache miss
func (c *RedisPolicyCache) GetPolicy(ctx context.Context, cardUsername string) (*models.PaymentPolicy, error) {
	value, err := c.redisClient.Get(ctx, policyKeyPrefix+cardUsername)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached policy: %w", err)
	}

	var policy models.PaymentPolicy
	if err := json.Unmarshal([]byte(value), &policy); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached policy: %w", err)
	}

	return &policy, nil
}

// SetPolicy caches the online-payment policy for a card username
func (c *RedisPolicyCache) SetPolicy(ctx context.Context, cardUsername string, policy *models.PaymentPolicy) error {
	data, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("failed to marshal policy: %w", err)
	}

	if err := c.redisClient.Set(ctx, policyKeyPrefix+cardUsername, data, policyTTL); err != nil {
		return fmt.Errorf("failed to cache policy: %w", err)
	}

	return nil
}
