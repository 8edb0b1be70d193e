/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package store persists serialised game snapshots by game id.
//
// Stores make no transactional promises. Callers that need a
// read-modify-write cycle must serialise it themselves.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Seednode/codenames/games/codenames"
)

// ErrNotFound is returned by Get when no snapshot exists for an id.
var ErrNotFound = errors.New("game not found")

func encode(g *codenames.Game) ([]byte, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize game: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*codenames.Game, error) {
	g := &codenames.Game{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("failed to deserialize game: %w", err)
	}
	return g, nil
}
