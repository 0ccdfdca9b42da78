package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/val100/market/internal/app/model"
	"github.com/val100/market/pkg/logger"
)

const cartCacheTTL = 10 * time.Minute

// CartCache is a read-through cache of cart aggregates keyed by user.
// Mutating cart operations invalidate the entry; a nil client disables the
// cache entirely so the service works without Redis.
type CartCache struct {
	client *redis.Client
}

func NewCartCache(client *redis.Client) *CartCache {
	return &CartCache{client: client}
}

func cartCacheKey(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (c *CartCache) Get(ctx context.Context, userID uint) (*model.Cart, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, cartCacheKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Cart cache read failed", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return nil, false
	}

	var cart model.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		logger.Warn("Cart cache entry corrupt, dropping", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.Invalidate(ctx, userID)
		return nil, false
	}

	logger.Debug("Cart cache hit", map[string]interface{}{
		"user_id": userID,
	})
	return &cart, true
}

func (c *CartCache) Set(ctx context.Context, cart *model.Cart) {
	if c == nil || c.client == nil || cart == nil {
		return
	}

	payload, err := json.Marshal(cart)
	if err != nil {
		logger.Warn("Failed to encode cart for cache", map[string]interface{}{
			"user_id": cart.UserID,
			"error":   err.Error(),
		})
		return
	}

	if err := c.client.Set(ctx, cartCacheKey(cart.UserID), payload, cartCacheTTL).Err(); err != nil {
		logger.Warn("Cart cache write failed", map[string]interface{}{
			"user_id": cart.UserID,
			"error":   err.Error(),
		})
	}
}

func (c *CartCache) Invalidate(ctx context.Context, userID uint) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, cartCacheKey(userID)).Err(); err != nil {
		logger.Warn("Cart cache invalidation failed", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
