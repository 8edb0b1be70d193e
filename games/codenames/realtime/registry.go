/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package realtime tracks live player connections per game and pushes each
// of them a freshly projected view after every change.
package realtime

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/Seednode/codenames/games/codenames"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrNoConnections is returned by Broadcast when nobody is watching a game.
var ErrNoConnections = errors.New("no connections registered for game")

var (
	connections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "codenames",
		Name:      "connections",
		Help:      "Open realtime connections.",
	})

	broadcasts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "codenames",
		Name:      "broadcasts_total",
		Help:      "State updates by delivery result.",
	}, []string{"result"})
)

// Conn is the outbound side of one player's connection. Messages are queued
// on a buffered channel drained by the transport.
type Conn struct {
	ID       string
	GameID   string
	PlayerID string

	send chan []byte

	mu     sync.Mutex
	closed bool
}

// NewConn creates a connection for playerID on gameID that queues up to
// buffer messages.
func NewConn(gameID, playerID string, buffer int) *Conn {
	return &Conn{
		ID:       uuid.NewString(),
		GameID:   gameID,
		PlayerID: playerID,
		send:     make(chan []byte, buffer),
	}
}

// Messages returns the outbound queue. It is closed once the connection
// leaves the registry.
func (c *Conn) Messages() <-chan []byte {
	return c.send
}

// Closed reports whether the connection has left the registry.
func (c *Conn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// enqueue never blocks. It reports false if the queue is full or closed.
func (c *Conn) enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Conn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// Registry holds the live connections of every game. The map is only
// touched under mu; views are built and queued outside it.
type Registry struct {
	mu    sync.Mutex
	games map[string]map[string]*Conn

	Logf func(format string, args ...any)
}

func NewRegistry() *Registry {
	return &Registry{
		games: make(map[string]map[string]*Conn),
		Logf:  log.Printf,
	}
}

func (r *Registry) Register(c *Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.games[c.GameID]
	if !ok {
		set = make(map[string]*Conn)
		r.games[c.GameID] = set
	}
	if _, dup := set[c.ID]; !dup {
		set[c.ID] = c
		connections.Inc()
	}
}

// Unregister removes c and closes its queue. The game's entry is dropped
// along with its last connection. A registered connection is never closed,
// so a game with an open connection always has an entry.
func (r *Registry) Unregister(c *Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.games[c.GameID]; ok {
		if _, present := set[c.ID]; present {
			delete(set, c.ID)
			connections.Dec()
		}
		if len(set) == 0 {
			delete(r.games, c.GameID)
		}
	}

	c.close()
}

// CloseGame unregisters every connection on gameID and returns how many
// there were.
func (r *Registry) CloseGame(gameID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.games[gameID]
	for _, c := range set {
		connections.Dec()
		c.close()
	}
	delete(r.games, gameID)

	return len(set)
}

func (r *Registry) Connections(gameID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.games[gameID])
}

func (r *Registry) Games() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.games)
}

func (r *Registry) snapshot(gameID string) ([]*Conn, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.games[gameID]
	if !ok {
		return nil, false
	}

	conns := make([]*Conn, 0, len(set))
	for _, c := range set {
		conns = append(conns, c)
	}
	return conns, true
}

// Send queues the view of g for c alone. The spy master flag comes from
// the player's current group in g.
func (r *Registry) Send(c *Conn, g *codenames.Game) error {
	view, err := codenames.NewView(g, c.PlayerID, g.IsSpyMaster(c.PlayerID))
	if err != nil {
		return err
	}

	msg, err := json.Marshal(StateUpdate{StateUpdate: view})
	if err != nil {
		return err
	}

	if !c.enqueue(msg) {
		broadcasts.WithLabelValues("dropped").Inc()
		r.Logf("REALTIME: Dropping connection %s of player %s on game %s", c.ID, c.PlayerID, c.GameID)
		r.Unregister(c)
		return nil
	}

	broadcasts.WithLabelValues("sent").Inc()
	return nil
}

// Broadcast queues a projected view of g on every connection of gameID
// whose player is a participant, and returns how many were queued. A
// connection that cannot accept the update is dropped without affecting
// the others.
func (r *Registry) Broadcast(gameID string, g *codenames.Game) (int, error) {
	conns, ok := r.snapshot(gameID)
	if !ok {
		return 0, ErrNoConnections
	}

	sent := 0
	for _, c := range conns {
		if !g.PlayerExists(c.PlayerID) {
			broadcasts.WithLabelValues("skipped").Inc()
			continue
		}

		if err := r.Send(c, g); err != nil {
			r.Logf("REALTIME: Failed to project game %s for player %s: %v", gameID, c.PlayerID, err)
			continue
		}
		if !c.Closed() {
			sent++
		}
	}

	return sent, nil
}
