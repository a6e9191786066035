// Package redis provides a read-through cache for restaurant records.
// Restaurant contact data changes rarely but is read on every order
// placement, so a short TTL cache in front of the database keeps the
// hot path off Postgres.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/restaurant"
	"tableorder/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "restaurant:"

// cachedRestaurant is the serialized cache entry.
type cachedRestaurant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// RestaurantCache decorates a RestaurantRepository with a Redis read-through
// cache. Cache failures never fail the request: on any Redis error the call
// falls through to the wrapped repository.
type RestaurantCache struct {
	client *redis.Client
	next   ports.RestaurantRepository
	ttl    time.Duration
	logger *slog.Logger
}

// NewRestaurantCache wraps the given repository with a Redis cache.
func NewRestaurantCache(
	client *redis.Client,
	next ports.RestaurantRepository,
	ttl time.Duration,
	logger *slog.Logger,
) *RestaurantCache {
	return &RestaurantCache{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: logger.With("component", "restaurant_cache"),
	}
}

// Get returns the restaurant from cache when present, otherwise loads it from
// the wrapped repository and stores it under the configured TTL.
func (c *RestaurantCache) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	key := keyPrefix + id.String()

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var entry cachedRestaurant
		if unmarshalErr := json.Unmarshal(raw, &entry); unmarshalErr == nil {
			return restaurant.NewRestaurant(id, entry.Name, entry.Email, entry.Phone)
		}
		c.logger.WarnContext(ctx, "corrupt cache entry, falling through", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "cache read failed, falling through", "key", key, "error", err)
	}

	rest, err := c.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	entry, err := json.Marshal(cachedRestaurant{
		ID:    rest.ID().String(),
		Name:  rest.Name(),
		Email: rest.Email(),
		Phone: rest.Phone(),
	})
	if err == nil {
		if setErr := c.client.Set(ctx, key, entry, c.ttl).Err(); setErr != nil {
			c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", setErr)
		}
	}

	return rest, nil
}
