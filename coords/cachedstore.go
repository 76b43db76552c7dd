package coords

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CachedStore wraps any Lookup with a Redis read-through cache keyed
// "<kind>:<id>". A cache hit never touches the inner store; a miss falls
// through to it and, on success, populates the cache for next time. A
// confirmed absence in the inner store (ErrDataMissing) is not cached and
// is not retried — it is returned as-is, wrapped so callers can still
// unwrap down to the inner store's own error.
type CachedStore struct {
	inner  Lookup
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCachedStore returns a CachedStore that reads through client with the
// given ttl before falling back to inner.
func NewCachedStore(inner Lookup, client *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: log.With().Str("component", "coords_cache").Logger(),
	}
}

// RoadNodeCoordinates implements Lookup.
func (c *CachedStore) RoadNodeCoordinates(ctx context.Context, id int64) (Point2D, error) {
	return c.readThrough(ctx, "road_node", id, c.inner.RoadNodeCoordinates)
}

// PTStopCoordinates implements Lookup.
func (c *CachedStore) PTStopCoordinates(ctx context.Context, id int64) (Point2D, error) {
	return c.readThrough(ctx, "pt_stop", id, c.inner.PTStopCoordinates)
}

// POICoordinates implements Lookup.
func (c *CachedStore) POICoordinates(ctx context.Context, id int64) (Point2D, error) {
	return c.readThrough(ctx, "poi", id, c.inner.POICoordinates)
}

func (c *CachedStore) readThrough(ctx context.Context, kind string, id int64, miss func(context.Context, int64) (Point2D, error)) (Point2D, error) {
	key := fmt.Sprintf("%s:%d", kind, id)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var p Point2D
		if jsonErr := json.Unmarshal(raw, &p); jsonErr == nil {
			c.logger.Debug().Str("key", key).Msg("cache hit")

			return p, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed, falling through")
	}

	p, err := miss(ctx, id)
	if err != nil {
		return Point2D{}, fmt.Errorf("%s: %w", key, err)
	}

	if raw, jsonErr := json.Marshal(p); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, raw, c.ttl).Err(); setErr != nil {
			c.logger.Warn().Err(setErr).Str("key", key).Msg("cache write failed")
		}
	}

	return p, nil
}
