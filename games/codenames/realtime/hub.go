/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package realtime

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Seednode/codenames/games/codenames"
	"github.com/Seednode/codenames/games/codenames/session"
	"github.com/gorilla/websocket"
)

// Hub applies player events through the coordinator and fans the results
// out over the registry.
type Hub struct {
	coord    *session.Coordinator
	registry *Registry

	Logf func(format string, args ...any)
}

func NewHub(coord *session.Coordinator, registry *Registry) *Hub {
	return &Hub{
		coord:    coord,
		registry: registry,
		Logf:     log.Printf,
	}
}

func (h *Hub) Registry() *Registry {
	return h.registry
}

// Broadcast is a session.CommitFunc for mutations that do not come from a
// connected player, so the game may have no connections yet.
func (h *Hub) Broadcast(gameID string, g *codenames.Game) {
	if _, err := h.registry.Broadcast(gameID, g); err != nil && !errors.Is(err, ErrNoConnections) {
		h.Logf("REALTIME: Broadcast to game %s failed: %v", gameID, err)
	}
}

// broadcastFrom returns the commit func for events sent over conn. While
// conn is open its game must have a connection set.
func (h *Hub) broadcastFrom(conn *Conn) session.CommitFunc {
	return func(gameID string, g *codenames.Game) {
		_, err := h.registry.Broadcast(gameID, g)
		if errors.Is(err, ErrNoConnections) && !conn.Closed() {
			panic(fmt.Sprintf("realtime: game %s has an open connection %s but no connection set", gameID, conn.ID))
		}
	}
}

// Evict closes the sockets still open on a game that no longer exists.
func (h *Hub) Evict(gameID string) {
	if n := h.registry.CloseGame(gameID); n > 0 {
		h.Logf("REALTIME: Closed %d connection(s) on expired game %s", n, gameID)
	}
}

// Join seats playerID with the spectators and updates everyone watching.
func (h *Hub) Join(ctx context.Context, gameID, playerID, name string) error {
	return h.coord.AddPlayer(ctx, gameID, playerID, name, h.Broadcast)
}

// Attach registers conn and queues its first view if the player has
// already joined. Both happen under the game's lock, so the first view
// always precedes any later update.
func (h *Hub) Attach(ctx context.Context, conn *Conn) error {
	return h.coord.View(ctx, conn.GameID, func(g *codenames.Game) error {
		h.registry.Register(conn)
		if !g.PlayerExists(conn.PlayerID) {
			return nil
		}
		return h.registry.Send(conn, g)
	})
}

// Serve runs one player's websocket until it closes. It returns an error
// only if the connection could not be attached to the game.
func (h *Hub) Serve(ctx context.Context, ws *websocket.Conn, gameID, playerID string) error {
	conn := NewConn(gameID, playerID, SendBuffer)

	if err := h.Attach(ctx, conn); err != nil {
		h.registry.Unregister(conn)
		_ = ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()),
			time.Now().Add(writeWait))
		_ = ws.Close()
		return err
	}

	h.Logf("REALTIME: Player %s connected to game %s (%s)", playerID, gameID, conn.ID)

	c := &client{ws: ws, conn: conn}
	go c.writePump()
	c.readPump(func(msg []byte) {
		h.handle(ctx, conn, msg)
	})

	h.registry.Unregister(conn)
	h.Logf("REALTIME: Player %s disconnected from game %s (%s)", playerID, gameID, conn.ID)

	return nil
}

// handle applies one inbound frame. Bad frames and rejected events are
// logged and dropped; the connection stays open.
func (h *Hub) handle(ctx context.Context, conn *Conn, data []byte) {
	msg, err := ParseClientMessage(data)
	if err != nil {
		h.Logf("REALTIME: Ignoring malformed message from player %s on game %s: %v", conn.PlayerID, conn.GameID, err)
		return
	}

	if msg.IsHeartbeat() {
		return
	}

	if err := h.Apply(ctx, conn, *msg.Event); err != nil {
		h.Logf("REALTIME: Rejected %s from player %s on game %s: %v", msg.Event.Kind, conn.PlayerID, conn.GameID, err)
	}
}

func (h *Hub) Apply(ctx context.Context, conn *Conn, req EventRequest) error {
	commit := h.broadcastFrom(conn)
	gameID, playerID := conn.GameID, conn.PlayerID

	switch req.Kind {
	case StartGame:
		return h.coord.Start(ctx, gameID, playerID, commit)
	case AddPlayer:
		return h.coord.AddPlayer(ctx, gameID, playerID, req.Name, commit)
	case MovePlayer:
		return h.coord.MovePlayer(ctx, gameID, playerID, req.NewGroup, commit)
	case RemovePlayer:
		return h.coord.RemovePlayer(ctx, gameID, playerID, commit)
	case GiveClue:
		return h.coord.ProvideClue(ctx, gameID, playerID, req.Clue, commit)
	case MakeGuess:
		return h.coord.Guess(ctx, gameID, playerID, req.Guess, commit)
	}

	return fmt.Errorf("%w: event %q", ErrUnknownMessage, req.Kind)
}
