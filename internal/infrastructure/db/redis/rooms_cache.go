package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MadeCbt/roombooking/internal/core/domain"
)

const roomsCacheKey = "rooms:list"

// RoomsCache is a short-lived read-through cache for the room listing.
// Every write path (room create/delete, booking) invalidates it, so the TTL
// only bounds staleness when an invalidation is lost.
type RoomsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoomsCache creates a RoomsCache wrapping the given Redis client.
func NewRoomsCache(client *redis.Client, ttl time.Duration) *RoomsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RoomsCache{client: client, ttl: ttl}
}

// Get returns the cached room list, or (nil, nil) on a miss.
func (c *RoomsCache) Get(ctx context.Context) ([]*domain.Room, error) {
	raw, err := c.client.Get(ctx, roomsCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rooms cache get: %w", err)
	}

	var rooms []*domain.Room
	if err := json.Unmarshal(raw, &rooms); err != nil {
		return nil, fmt.Errorf("rooms cache decode: %w", err)
	}
	return rooms, nil
}

// Set stores the room list with the configured TTL.
func (c *RoomsCache) Set(ctx context.Context, rooms []*domain.Room) error {
	raw, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("rooms cache encode: %w", err)
	}
	return c.client.Set(ctx, roomsCacheKey, raw, c.ttl).Err()
}

// Invalidate drops the cached list.
func (c *RoomsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, roomsCacheKey).Err()
}
