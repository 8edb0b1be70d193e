/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/Seednode/codenames/games/codenames"
	"github.com/Seednode/codenames/games/codenames/store"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoordinator(t *testing.T) (*Coordinator, *store.Memory) {
	t.Helper()

	mem := store.NewMemory()
	return NewCoordinator(mem, rand.New(rand.NewSource(7))), mem
}

// seatedGame creates a game hosted by "host" with a spy master and a guesser
// on each team, and returns its id.
func seatedGame(t *testing.T, c *Coordinator) string {
	t.Helper()
	ctx := context.Background()

	id, err := c.NewGame(ctx, "host", "Host")
	require.NoError(t, err)

	require.NoError(t, c.MovePlayer(ctx, id, "host", codenames.RedSpyMasters))
	for pid, group := range map[string]codenames.Group{
		"red-guess": codenames.RedGuessers,
		"blue-spy":  codenames.BlueSpyMasters,
		"blue-gues": codenames.BlueGuessers,
	} {
		require.NoError(t, c.AddPlayer(ctx, id, pid, pid))
		require.NoError(t, c.MovePlayer(ctx, id, pid, group))
	}

	return id
}

func TestNewGame(t *testing.T) {
	ctx := context.Background()
	c, mem := newCoordinator(t)

	before := testutil.ToFloat64(gamesCreated)

	id, err := c.NewGame(ctx, "host", "Alice")
	require.NoError(t, err)
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	assert.Equal(t, 1, mem.Len())
	assert.Equal(t, before+1, testutil.ToFloat64(gamesCreated))

	g, err := c.Game(ctx, id)
	require.NoError(t, err)

	host, ok := g.Player("host")
	require.True(t, ok)
	assert.Equal(t, codenames.Player{Name: "Alice", Group: codenames.Spectators, IsHost: true}, host)
	assert.Equal(t, "host", g.HostID)
	assert.False(t, g.IsStarted)
	assert.Equal(t, codenames.ActionClue, g.NextAction)

	exists, err := c.PlayerExists(ctx, id, "host")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = c.PlayerExists(ctx, id, "someone-else")
	require.NoError(t, err)
	assert.False(t, exists)

	other, err := c.NewGame(ctx, "host", "Alice")
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestUnknownGame(t *testing.T) {
	ctx := context.Background()
	c, _ := newCoordinator(t)

	called := false
	err := c.Mutate(ctx, "missing", "test", func(*codenames.Game) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, codenames.ErrNoSuchGame)
	assert.False(t, called, "op must not run when the load fails")

	_, err = c.PlayerExists(ctx, "missing", "p")
	assert.ErrorIs(t, err, codenames.ErrNoSuchGame)

	assert.ErrorIs(t, c.Start(ctx, "missing", "p"), codenames.ErrNoSuchGame)
}

func TestFailedMutationIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	c, _ := newCoordinator(t)
	id := seatedGame(t, c)

	before := testutil.ToFloat64(mutations.WithLabelValues("start", "error"))

	committed := false
	err := c.Start(ctx, id, "red-guess", func(string, *codenames.Game) { committed = true })
	assert.ErrorIs(t, err, codenames.ErrNotHost)
	assert.False(t, committed)
	assert.Equal(t, before+1, testutil.ToFloat64(mutations.WithLabelValues("start", "error")))

	err = c.Mutate(ctx, id, "test", func(g *codenames.Game) error {
		require.NoError(t, g.RemovePlayer("blue-spy"))
		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")

	g, err := c.Game(ctx, id)
	require.NoError(t, err)
	assert.True(t, g.PlayerExists("blue-spy"))
	assert.False(t, g.IsStarted)
}

func TestTurnFlow(t *testing.T) {
	ctx := context.Background()
	c, _ := newCoordinator(t)
	id := seatedGame(t, c)

	var commits []*codenames.Game
	record := func(gameID string, g *codenames.Game) {
		assert.Equal(t, id, gameID)
		commits = append(commits, g)
	}

	require.NoError(t, c.Start(ctx, id, "host", record))

	g, err := c.Game(ctx, id)
	require.NoError(t, err)
	require.True(t, g.IsStarted)

	spy, guesser := "host", "red-guess"
	if g.TeamTurn == codenames.TeamBlue {
		spy, guesser = "blue-spy", "blue-gues"
	}
	own, grey := -1, -1
	for i, tile := range g.Tiles {
		switch {
		case tile.Colour == g.TeamTurn.Tile() && own < 0:
			own = i
		case tile.Colour == codenames.TileGrey && grey < 0:
			grey = i
		}
	}

	require.NoError(t, c.ProvideClue(ctx, id, spy, codenames.Clue{Word: "animal", Count: 2}, record))
	require.NoError(t, c.Guess(ctx, id, guesser, codenames.Guess{TileIndex: own}, record))
	require.NoError(t, c.Guess(ctx, id, guesser, codenames.Guess{TileIndex: grey}, record))

	require.Len(t, commits, 4)
	assert.Equal(t, codenames.ActionGuess, commits[2].NextAction)
	assert.Len(t, commits[3].History, 3)

	final, err := c.Game(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, codenames.ActionClue, final.NextAction)
	assert.Equal(t, g.TeamTurn.Other(), final.TeamTurn)

	err = c.Guess(ctx, id, guesser, codenames.Guess{TileIndex: 30})
	assert.ErrorIs(t, err, codenames.ErrInvalidAction)
}

func TestEmptyGameIsDeleted(t *testing.T) {
	ctx := context.Background()
	c, mem := newCoordinator(t)

	id, err := c.NewGame(ctx, "host", "Host")
	require.NoError(t, err)
	require.NoError(t, c.AddPlayer(ctx, id, "guest", "Guest"))

	require.NoError(t, c.RemovePlayer(ctx, id, "host"))
	assert.Equal(t, 1, mem.Len())

	var committed *codenames.Game
	require.NoError(t, c.RemovePlayer(ctx, id, "guest", func(_ string, g *codenames.Game) { committed = g }))
	require.NotNil(t, committed)
	assert.True(t, committed.IsEmpty())
	assert.Equal(t, 0, mem.Len())

	_, err = c.Game(ctx, id)
	assert.ErrorIs(t, err, codenames.ErrNoSuchGame)
	assert.ErrorIs(t, c.AddPlayer(ctx, id, "late", "Late"), codenames.ErrNoSuchGame)
}

func TestConcurrentMutationsAreSerialised(t *testing.T) {
	ctx := context.Background()
	c, _ := newCoordinator(t)

	id, err := c.NewGame(ctx, "host", "Host")
	require.NoError(t, err)

	const players = 50

	var (
		mu    sync.Mutex
		sizes []int
	)
	record := func(_ string, g *codenames.Game) {
		mu.Lock()
		defer mu.Unlock()
		teams := g.Teams()
		sizes = append(sizes, len(teams.Spectators))
	}

	var wg sync.WaitGroup
	for i := 0; i < players; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pid := fmt.Sprintf("player-%d", i)
			assert.NoError(t, c.AddPlayer(ctx, id, pid, pid, record))
		}(i)
	}
	wg.Wait()

	g, err := c.Game(ctx, id)
	require.NoError(t, err)
	assert.Len(t, g.Teams().Spectators, players+1, "no update may be lost")

	require.Len(t, sizes, players)
	for i, n := range sizes {
		assert.Equal(t, i+2, n, "commits must run in admission order")
	}

	c.mu.Lock()
	assert.Empty(t, c.locks, "lock table must not retain idle games")
	c.mu.Unlock()
}

func TestDifferentGamesDoNotBlock(t *testing.T) {
	ctx := context.Background()
	c, _ := newCoordinator(t)

	a, err := c.NewGame(ctx, "host", "Host")
	require.NoError(t, err)
	b, err := c.NewGame(ctx, "host", "Host")
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- c.Mutate(ctx, a, "test", func(*codenames.Game) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	finished := make(chan error, 1)
	go func() { finished <- c.AddPlayer(ctx, b, "guest", "Guest") }()

	select {
	case err := <-finished:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("mutation of another game was blocked")
	}

	blocked := make(chan error, 1)
	go func() { blocked <- c.AddPlayer(ctx, a, "guest", "Guest") }()

	select {
	case <-blocked:
		t.Fatal("mutation of the same game ran concurrently")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-done)
	assert.NoError(t, <-blocked)
}

type failingStore struct {
	*store.Memory
	err error
}

func (f *failingStore) Set(context.Context, string, *codenames.Game) error {
	return f.err
}

func TestStoreFailure(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	c := NewCoordinator(mem, nil)
	id, err := c.NewGame(ctx, "host", "Host")
	require.NoError(t, err)

	broken := NewCoordinator(&failingStore{Memory: mem, err: errors.New("disk full")}, nil)

	committed := false
	err = broken.AddPlayer(ctx, id, "guest", "Guest", func(string, *codenames.Game) { committed = true })
	require.EqualError(t, err, "disk full")
	assert.False(t, committed)

	_, err = broken.NewGame(ctx, "host", "Host")
	assert.EqualError(t, err, "disk full")
}

// pausingStore blocks the first Get after arm until release is closed.
type pausingStore struct {
	*store.Memory

	mu      sync.Mutex
	armed   bool
	entered chan struct{}
	release chan struct{}
}

func (p *pausingStore) arm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.armed = true
	p.entered = make(chan struct{})
	p.release = make(chan struct{})
}

func (p *pausingStore) Get(ctx context.Context, id string) (*codenames.Game, error) {
	p.mu.Lock()
	armed := p.armed
	p.armed = false
	p.mu.Unlock()

	if armed {
		close(p.entered)
		<-p.release
	}

	return p.Memory.Get(ctx, id)
}

func lockRefs(c *Coordinator, gameID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.locks[gameID]; ok {
		return l.refs
	}
	return 0
}

func TestReap(t *testing.T) {
	ctx := context.Background()
	c, mem := newCoordinator(t)

	id, err := c.NewGame(ctx, "host", "Host")
	require.NoError(t, err)

	reaped, err := c.Reap(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []string{id}, reaped)
	assert.Zero(t, mem.Len())

	_, err = c.Game(ctx, id)
	assert.ErrorIs(t, err, codenames.ErrNoSuchGame)

	c.mu.Lock()
	assert.Empty(t, c.locks)
	c.mu.Unlock()
}

func TestReapWaitsForMutation(t *testing.T) {
	ctx := context.Background()
	const idle = 200 * time.Millisecond

	ps := &pausingStore{Memory: store.NewMemory()}
	c := NewCoordinator(ps, rand.New(rand.NewSource(7)))

	id, err := c.NewGame(ctx, "host", "Host")
	require.NoError(t, err)
	time.Sleep(idle + 100*time.Millisecond)

	ps.arm()
	added := make(chan error, 1)
	go func() { added <- c.AddPlayer(ctx, id, "guest", "Guest") }()
	<-ps.entered

	type result struct {
		ids []string
		err error
	}
	reaped := make(chan result, 1)
	go func() {
		ids, err := c.Reap(ctx, idle)
		reaped <- result{ids, err}
	}()

	require.Eventually(t, func() bool { return lockRefs(c, id) == 2 }, 2*time.Second, time.Millisecond,
		"reap must wait on the game's lock")

	select {
	case <-reaped:
		t.Fatal("reap finished while a mutation held the game")
	default:
	}

	close(ps.release)
	require.NoError(t, <-added)

	r := <-reaped
	require.NoError(t, r.err)
	assert.Empty(t, r.ids, "a game written by the in-flight mutation is no longer idle")

	exists, err := c.PlayerExists(ctx, id, "guest")
	require.NoError(t, err)
	assert.True(t, exists)
}

type plainStore struct {
	Store
}

func TestReapWithoutExpiry(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	c := NewCoordinator(plainStore{mem}, rand.New(rand.NewSource(7)))

	_, err := c.NewGame(ctx, "host", "Host")
	require.NoError(t, err)

	reaped, err := c.Reap(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Empty(t, reaped)
	assert.Equal(t, 1, mem.Len())
}

func TestDefaultBoardsDiffer(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	boards := make(map[[codenames.BoardSize]codenames.Tile]bool)
	for range 4 {
		c := NewCoordinator(mem, nil)
		id, err := c.NewGame(ctx, "host", "Host")
		require.NoError(t, err)

		g, err := c.Game(ctx, id)
		require.NoError(t, err)
		boards[g.Tiles] = true
	}

	assert.Len(t, boards, 4, "coordinators created together must not deal the same board")
}
