/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package codenames

import (
	"fmt"
	"math/rand"
)

const (
	// Rows is the number of rows of tiles on the board.
	Rows = 5
	// Columns is the number of columns of tiles on the board.
	Columns = 5
	// BoardSize is the total number of tiles on the board.
	BoardSize = Rows * Columns

	AssassinTiles     = 1
	GreyTiles         = 7
	StartingTeamTiles = 9
	OtherTeamTiles    = 8
)

func FirstTeam(rng *rand.Rand) TeamColour {
	if rng.Intn(2) == 0 {
		return TeamRed
	}
	return TeamBlue
}

// NewTiles deals a board in row-major order. The starting team gets the
// extra tile. Colours are shuffled independently of the words, which are
// sampled without replacement from vocabulary. The result depends only on
// the state of rng.
func NewTiles(rng *rand.Rand, vocabulary []string, first TeamColour) ([BoardSize]Tile, error) {
	var tiles [BoardSize]Tile

	words := distinct(vocabulary)
	if len(words) < BoardSize {
		return tiles, fmt.Errorf("need at least %d distinct words, have %d", BoardSize, len(words))
	}

	colours := make([]TileColour, 0, BoardSize)
	colours = appendN(colours, TileBlack, AssassinTiles)
	colours = appendN(colours, TileGrey, GreyTiles)
	colours = appendN(colours, first.Tile(), StartingTeamTiles)
	colours = appendN(colours, first.Other().Tile(), OtherTeamTiles)

	rng.Shuffle(len(colours), func(i, j int) {
		colours[i], colours[j] = colours[j], colours[i]
	})

	picks := rng.Perm(len(words))[:BoardSize]
	for i := range tiles {
		tiles[i] = Tile{Word: words[picks[i]], Colour: colours[i]}
	}

	return tiles, nil
}

// NewBoard picks a starting team and deals a board for it from Words.
func NewBoard(rng *rand.Rand) ([BoardSize]Tile, TeamColour, error) {
	first := FirstTeam(rng)
	tiles, err := NewTiles(rng, Words, first)
	return tiles, first, err
}

func appendN(colours []TileColour, c TileColour, n int) []TileColour {
	for range n {
		colours = append(colours, c)
	}
	return colours
}

func distinct(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
