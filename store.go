/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"context"
	"time"

	"github.com/Seednode/codenames/games/codenames/realtime"
	"github.com/Seednode/codenames/games/codenames/session"
	"github.com/Seednode/codenames/games/codenames/store"
)

type gameStore interface {
	session.Store
	Close() error
}

type memoryStore struct {
	*store.Memory
}

func (memoryStore) Close() error { return nil }

func openStore(ctx context.Context, cfg *Config) (gameStore, error) {
	switch cfg.store {
	case storeRedis:
		r, err := store.NewRedisFromURL(cfg.redisURL, cfg.sessionTimeout)
		if err != nil {
			return nil, err
		}

		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if err := r.Ping(pingCtx); err != nil {
			_ = r.Close()
			return nil, err
		}

		return r, nil
	case storePostgres:
		return store.NewPostgres(ctx, cfg.databaseURL)
	default:
		return memoryStore{store.NewMemory()}, nil
	}
}

// reapLoop removes idle games every half session timeout until ctx ends,
// closing any sockets still open on them. Stores with native expiry are
// left alone.
func reapLoop(ctx context.Context, cfg *Config, games gameStore, coord *session.Coordinator, hub *realtime.Hub) {
	if _, ok := games.(session.Expirer); !ok {
		return
	}

	ticker := time.NewTicker(cfg.sessionTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reaped, err := coord.Reap(ctx, cfg.sessionTimeout)
			for _, id := range reaped {
				hub.Evict(id)
			}
			if err != nil {
				logf(cfg, "ERROR: Failed to reap idle games: %v", err)
				continue
			}
			if len(reaped) > 0 {
				logf(cfg, "GAMES: Reaped %d idle game(s)", len(reaped))
			}
		}
	}
}
