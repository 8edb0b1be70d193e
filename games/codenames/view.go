/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package codenames

// ViewTile is a tile as seen by one player. Colour is nil while hidden.
type ViewTile struct {
	Word   string      `json:"word"`
	Colour *TileColour `json:"colour"`
}

// View is the redacted state of a game for a single viewer.
type View struct {
	IsStarted  bool                `json:"is_started"`
	Tiles      [BoardSize]ViewTile `json:"tiles"`
	Teams      Teams               `json:"teams"`
	ThisPlayer Player              `json:"this_player"`
	TeamTurn   TeamColour          `json:"team_turn"`
	NextAction Action              `json:"next_action"`
	Winner     TeamColour          `json:"winner,omitempty"`
	History    []Event             `json:"history"`
}

// NewView projects g for playerID. Tile colours are shown to spy masters,
// and to everyone else once the tile has been guessed. The viewer must
// already be a participant.
func NewView(g *Game, playerID string, spyMaster bool) (*View, error) {
	this, ok := g.Player(playerID)
	if !ok {
		return nil, ErrNoSuchPlayer
	}

	v := &View{
		IsStarted:  g.IsStarted,
		Teams:      g.Teams(),
		ThisPlayer: this,
		TeamTurn:   g.TeamTurn,
		NextAction: g.NextAction,
		Winner:     g.Winner,
		History:    append([]Event{}, g.History...),
	}

	for i, tile := range g.Tiles {
		v.Tiles[i].Word = tile.Word
		if spyMaster || g.Revealed(i) {
			colour := tile.Colour
			v.Tiles[i].Colour = &colour
		}
	}

	return v, nil
}
