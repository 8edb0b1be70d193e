/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Seednode/codenames/games/codenames"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "codenames:game:"

// Redis stores each snapshot as a JSON string under codenames:game:{id}.
// Snapshots expire after ttl without writes; a zero ttl keeps them forever.
// The client is safe for concurrent use.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(opts *redis.Options, ttl time.Duration) *Redis {
	return &Redis{
		rdb: redis.NewClient(opts),
		ttl: ttl,
	}
}

// NewRedisFromURL parses a redis:// URL and creates a store for it.
func NewRedisFromURL(url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewRedis(opts, ttl), nil
}

// GameKey returns the Redis key holding the snapshot for id.
func GameKey(id string) string {
	return redisKeyPrefix + id
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

// Get retrieves a game by id. Returns ErrNotFound if it does not exist.
func (r *Redis) Get(ctx context.Context, id string) (*codenames.Game, error) {
	data, err := r.rdb.Get(ctx, GameKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game from Redis: %w", err)
	}

	return decode(data)
}

// Set writes the snapshot for id and refreshes its expiry.
func (r *Redis) Set(ctx context.Context, id string, g *codenames.Game) error {
	data, err := encode(g)
	if err != nil {
		return err
	}

	if err := r.rdb.Set(ctx, GameKey(id), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write game to Redis: %w", err)
	}

	return nil
}

// Delete removes the snapshot for id. Deleting a missing game is not an error.
func (r *Redis) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, GameKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete game from Redis: %w", err)
	}

	return nil
}
