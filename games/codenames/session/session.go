/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package session serialises every read-modify-write of a stored game.
package session

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Seednode/codenames/games/codenames"
	"github.com/Seednode/codenames/games/codenames/store"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "codenames",
		Name:      "mutations_total",
		Help:      "Game mutations by operation and result.",
	}, []string{"op", "result"})

	gamesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "codenames",
		Name:      "games_created_total",
		Help:      "Games created.",
	})
)

// Store is the persistence a Coordinator needs. Get must return
// store.ErrNotFound for unknown ids.
type Store interface {
	Get(ctx context.Context, id string) (*codenames.Game, error)
	Set(ctx context.Context, id string, g *codenames.Game) error
	Delete(ctx context.Context, id string) error
}

// Expirer is implemented by stores that track when each game was last
// written and cannot expire games themselves.
type Expirer interface {
	Stale(ctx context.Context, idle time.Duration) ([]string, error)
	DeleteStale(ctx context.Context, id string, idle time.Duration) (bool, error)
}

// CommitFunc runs after a mutation is persisted, while the game's lock is
// still held. Commit funcs for one game therefore run in commit order.
type CommitFunc func(gameID string, g *codenames.Game)

type gameLock struct {
	mu   sync.Mutex
	refs int
}

// Coordinator applies mutations to stored games one at a time per game id.
// Operations on different ids proceed in parallel.
type Coordinator struct {
	store Store

	mu    sync.Mutex
	locks map[string]*gameLock

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewCoordinator creates a Coordinator backed by st. Boards are dealt from
// rng; a nil rng is seeded from crypto/rand.
func NewCoordinator(st Store, rng *rand.Rand) *Coordinator {
	if rng == nil {
		rng = rand.New(rand.NewSource(randomSeed()))
	}

	return &Coordinator{
		store: st,
		locks: make(map[string]*gameLock),
		rng:   rng,
	}
}

func randomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(err)
	}

	return int64(binary.LittleEndian.Uint64(b[:]))
}

func (c *Coordinator) lock(gameID string) func() {
	c.mu.Lock()
	l, ok := c.locks[gameID]
	if !ok {
		l = &gameLock{}
		c.locks[gameID] = l
	}
	l.refs++
	c.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		c.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(c.locks, gameID)
		}
		c.mu.Unlock()
	}
}

func (c *Coordinator) load(ctx context.Context, gameID string) (*codenames.Game, error) {
	g, err := c.store.Get(ctx, gameID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, codenames.ErrNoSuchGame
	}
	return g, err
}

// Mutate loads the game, applies fn and persists the result. A game left
// with no participants is deleted instead of saved. An error from fn
// leaves the stored game untouched.
func (c *Coordinator) Mutate(ctx context.Context, gameID, op string, fn func(*codenames.Game) error, onCommit ...CommitFunc) error {
	unlock := c.lock(gameID)
	defer unlock()

	err := c.mutate(ctx, gameID, fn, onCommit)

	result := "ok"
	if err != nil {
		result = "error"
	}
	mutations.WithLabelValues(op, result).Inc()

	return err
}

func (c *Coordinator) mutate(ctx context.Context, gameID string, fn func(*codenames.Game) error, onCommit []CommitFunc) error {
	g, err := c.load(ctx, gameID)
	if err != nil {
		return err
	}

	if err := fn(g); err != nil {
		return err
	}

	if g.IsEmpty() {
		err = c.store.Delete(ctx, gameID)
	} else {
		err = c.store.Set(ctx, gameID, g)
	}
	if err != nil {
		return err
	}

	for _, commit := range onCommit {
		commit(gameID, g)
	}

	return nil
}

// View runs fn against a consistent snapshot of the game.
func (c *Coordinator) View(ctx context.Context, gameID string, fn func(*codenames.Game) error) error {
	unlock := c.lock(gameID)
	defer unlock()

	g, err := c.load(ctx, gameID)
	if err != nil {
		return err
	}

	return fn(g)
}

// Reap deletes every game that has not been written for longer than idle
// and returns the ids it deleted. Each game is checked again under its lock,
// so a game written by a mutation that was in flight survives. Stores that
// expire games on their own are left alone.
func (c *Coordinator) Reap(ctx context.Context, idle time.Duration) ([]string, error) {
	ex, ok := c.store.(Expirer)
	if !ok {
		return nil, nil
	}

	stale, err := ex.Stale(ctx, idle)
	if err != nil {
		return nil, err
	}

	var reaped []string
	for _, id := range stale {
		deleted, err := c.reapOne(ctx, ex, id, idle)
		if err != nil {
			return reaped, err
		}
		if deleted {
			reaped = append(reaped, id)
		}
	}

	return reaped, nil
}

func (c *Coordinator) reapOne(ctx context.Context, ex Expirer, id string, idle time.Duration) (bool, error) {
	unlock := c.lock(id)
	defer unlock()

	deleted, err := ex.DeleteStale(ctx, id, idle)
	if err != nil {
		mutations.WithLabelValues("reap", "error").Inc()
		return false, err
	}
	if deleted {
		mutations.WithLabelValues("reap", "ok").Inc()
	}

	return deleted, nil
}

// NewGameID returns a fresh game id: a random UUID in hex, without dashes.
func NewGameID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewGame creates a game on a fresh board with hostID as its only
// participant, seated with the spectators, and returns its id.
func (c *Coordinator) NewGame(ctx context.Context, hostID, hostName string) (string, error) {
	c.rngMu.Lock()
	tiles, first, err := codenames.NewBoard(c.rng)
	c.rngMu.Unlock()
	if err != nil {
		return "", err
	}

	g := codenames.New(tiles, hostID, first)
	if err := g.AddPlayer(hostID, codenames.Player{Name: hostName, IsHost: true}); err != nil {
		return "", err
	}

	gameID := NewGameID()

	unlock := c.lock(gameID)
	defer unlock()

	if err := c.store.Set(ctx, gameID, g); err != nil {
		mutations.WithLabelValues("new_game", "error").Inc()
		return "", err
	}

	mutations.WithLabelValues("new_game", "ok").Inc()
	gamesCreated.Inc()

	return gameID, nil
}

func (c *Coordinator) PlayerExists(ctx context.Context, gameID, playerID string) (bool, error) {
	var exists bool
	err := c.View(ctx, gameID, func(g *codenames.Game) error {
		exists = g.PlayerExists(playerID)
		return nil
	})

	return exists, err
}

// Game returns a copy of the stored game.
func (c *Coordinator) Game(ctx context.Context, gameID string) (*codenames.Game, error) {
	var game *codenames.Game
	err := c.View(ctx, gameID, func(g *codenames.Game) error {
		game = g
		return nil
	})

	return game, err
}

func (c *Coordinator) Start(ctx context.Context, gameID, playerID string, onCommit ...CommitFunc) error {
	return c.Mutate(ctx, gameID, "start", func(g *codenames.Game) error {
		return g.Start(playerID)
	}, onCommit...)
}

// AddPlayer seats a new participant with the spectators.
func (c *Coordinator) AddPlayer(ctx context.Context, gameID, playerID, name string, onCommit ...CommitFunc) error {
	return c.Mutate(ctx, gameID, "add_player", func(g *codenames.Game) error {
		return g.AddPlayer(playerID, codenames.Player{Name: name})
	}, onCommit...)
}

func (c *Coordinator) MovePlayer(ctx context.Context, gameID, playerID string, group codenames.Group, onCommit ...CommitFunc) error {
	return c.Mutate(ctx, gameID, "move_player", func(g *codenames.Game) error {
		return g.MovePlayer(playerID, group)
	}, onCommit...)
}

// RemovePlayer removes playerID, deleting the game once nobody is left.
func (c *Coordinator) RemovePlayer(ctx context.Context, gameID, playerID string, onCommit ...CommitFunc) error {
	return c.Mutate(ctx, gameID, "remove_player", func(g *codenames.Game) error {
		return g.RemovePlayer(playerID)
	}, onCommit...)
}

func (c *Coordinator) ProvideClue(ctx context.Context, gameID, playerID string, clue codenames.Clue, onCommit ...CommitFunc) error {
	return c.Mutate(ctx, gameID, "clue", func(g *codenames.Game) error {
		return g.ProvideClue(playerID, clue)
	}, onCommit...)
}

func (c *Coordinator) Guess(ctx context.Context, gameID, playerID string, guess codenames.Guess, onCommit ...CommitFunc) error {
	return c.Mutate(ctx, gameID, "guess", func(g *codenames.Game) error {
		return g.Guess(playerID, guess)
	}, onCommit...)
}
