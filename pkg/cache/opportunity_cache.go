package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/opportunity-management/services/opportunity/domain/models"
)

const (
	// OpportunityCacheTTL is the time-to-live for cached opportunities.
	OpportunityCacheTTL = 24 * time.Hour

	opportunityCacheKeyPrefix = "opportunity"
)

// OpportunityCache stores serialized opportunity aggregates in Redis for
// read-through access. Entries are invalidated on every mutation, so a hit
// is never staler than the last write through this process group.
// Key format: "opportunity:{opportunityID}"
type OpportunityCache struct {
	client *RedisClient
}

// NewOpportunityCache creates a new OpportunityCache backed by the given RedisClient.
func NewOpportunityCache(r *RedisClient) *OpportunityCache {
	return &OpportunityCache{client: r}
}

// Get retrieves a cached opportunity by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *OpportunityCache) Get(ctx context.Context, id uuid.UUID) (*models.Opportunity, error) {
	raw, err := c.client.Client().Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil // key not found
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var o models.Opportunity
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("cache unmarshal: %w", err)
	}
	return &o, nil
}

// Set writes a serialized opportunity with a 24-hour TTL.
func (c *OpportunityCache) Set(ctx context.Context, o *models.Opportunity) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(o.ID), raw, OpportunityCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached opportunity. Called after every mutation.
func (c *OpportunityCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "opportunity:{opportunityID}"
func (c *OpportunityCache) key(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", opportunityCacheKeyPrefix, id)
}
