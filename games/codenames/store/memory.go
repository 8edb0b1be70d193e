/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package store

import (
	"context"
	"sync"
	"time"

	"github.com/Seednode/codenames/games/codenames"
)

type snapshot struct {
	data      []byte
	updatedAt time.Time
}

// Memory keeps snapshots in process memory. Games are stored serialised,
// so callers never share a *codenames.Game with the store.
type Memory struct {
	mu    sync.RWMutex
	games map[string]snapshot
	now   func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		games: make(map[string]snapshot),
		now:   time.Now,
	}
}

func (m *Memory) Get(_ context.Context, id string) (*codenames.Game, error) {
	m.mu.RLock()
	s, ok := m.games[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	return decode(s.data)
}

func (m *Memory) Set(_ context.Context, id string, g *codenames.Game) error {
	data, err := encode(g)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[id] = snapshot{data: data, updatedAt: m.now()}

	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)

	return nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Stale lists the games that have not been written for longer than idle.
func (m *Memory) Stale(_ context.Context, idle time.Duration) ([]string, error) {
	cutoff := m.now().Add(-idle)

	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for id, s := range m.games {
		if s.updatedAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// DeleteStale deletes id only if it is still idle, and reports whether it
// did.
func (m *Memory) DeleteStale(_ context.Context, id string, idle time.Duration) (bool, error) {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.games[id]
	if !ok || !s.updatedAt.Before(cutoff) {
		return false, nil
	}
	delete(m.games, id)

	return true, nil
}
