/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package codenames

import (
	"errors"
	"fmt"
)

var (
	ErrGameAlreadyStarted   = errors.New("game has already started")
	ErrGameNotStarted       = errors.New("game has not yet started")
	ErrGameOver             = errors.New("game is over")
	ErrIllegalPlayerGroup   = errors.New("player is in the wrong group for this action")
	ErrInvalidAction        = errors.New("cannot perform this action")
	ErrInvalidClue          = errors.New("clue must have a word and a non-negative count")
	ErrNoSuchGame           = errors.New("game does not exist")
	ErrNoSuchPlayer         = errors.New("player is not in this game")
	ErrNotEnoughPlayers     = errors.New("not enough players to perform this action")
	ErrNotHost              = errors.New("player must be the host to perform this action")
	ErrPlayerAlreadyInGame  = errors.New("player is already in this game")
	ErrTileAlreadyRevealed  = errors.New("tile has already been revealed")
	ErrTileIndexOutOfBounds = errors.New("tile index out of bounds")
)

// IllegalPlayerGroupError is returned when a participant acts out of turn.
// It matches ErrIllegalPlayerGroup with errors.Is.
type IllegalPlayerGroupError struct {
	Expected Group
	Actual   Group
}

func (e *IllegalPlayerGroupError) Error() string {
	return fmt.Sprintf("player must be a %s to perform this action, but is a %s",
		e.Expected.Label(), e.Actual.Label())
}

func (e *IllegalPlayerGroupError) Is(target error) bool {
	return target == ErrIllegalPlayerGroup
}

// TileIndexOutOfBoundsError is returned for guesses off the board.
// It matches ErrTileIndexOutOfBounds with errors.Is.
type TileIndexOutOfBoundsError struct {
	TileIndex int
}

func (e *TileIndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("invalid tile index: %d", e.TileIndex)
}

func (e *TileIndexOutOfBoundsError) Is(target error) bool {
	return target == ErrTileIndexOutOfBounds
}
