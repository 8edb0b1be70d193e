/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package codenames implements the rules of the Codenames board game.
//
// Two teams, Red and Blue, each have one spy master and any number of
// guessers. Spy masters see the colour of every tile on the 5x5 board and
// take turns giving one-word clues; guessers reveal tiles in response.
//
// A Game is a plain value with no locking of its own. Callers that share a
// game between goroutines must serialise access to it.
package codenames

import (
	"encoding/json"
	"fmt"
)

// TeamColour identifies one of the two competing teams.
type TeamColour string

const (
	TeamRed  TeamColour = "Red"
	TeamBlue TeamColour = "Blue"
)

func (c TeamColour) Other() TeamColour {
	if c == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

// Tile returns the tile colour owned by the team.
func (c TeamColour) Tile() TileColour {
	if c == TeamRed {
		return TileRed
	}
	return TileBlue
}

// TileColour is the hidden affiliation of a tile.
type TileColour string

const (
	TileRed   TileColour = "Red"
	TileBlue  TileColour = "Blue"
	TileGrey  TileColour = "Grey"
	TileBlack TileColour = "Black"
)

// Action is the kind of event the active team must submit next.
type Action string

const (
	ActionClue  Action = "Clue"
	ActionGuess Action = "Guess"
)

// Group is the membership group a player belongs to.
type Group string

const (
	Spectators     Group = "Spectators"
	BlueGuessers   Group = "BlueGuessers"
	BlueSpyMasters Group = "BlueSpyMasters"
	RedGuessers    Group = "RedGuessers"
	RedSpyMasters  Group = "RedSpyMasters"
)

var groupLabels = map[Group]string{
	Spectators:     "Spectator",
	BlueGuessers:   "Blue Guesser",
	BlueSpyMasters: "Blue Spy Master",
	RedGuessers:    "Red Guesser",
	RedSpyMasters:  "Red Spy Master",
}

func (g Group) Valid() bool {
	_, ok := groupLabels[g]
	return ok
}

// Label returns the human-readable name of a single member of the group.
func (g Group) Label() string {
	if label, ok := groupLabels[g]; ok {
		return label
	}
	return string(g)
}

// IsSpyMaster reports whether members of g may see every tile colour.
func (g Group) IsSpyMaster() bool {
	return g == RedSpyMasters || g == BlueSpyMasters
}

// UnmarshalText rejects group names that do not exist.
func (g *Group) UnmarshalText(text []byte) error {
	candidate := Group(text)
	if !candidate.Valid() {
		return fmt.Errorf("unknown group %q", text)
	}
	*g = candidate
	return nil
}

// groupFor returns the group expected to submit action on behalf of team.
func groupFor(team TeamColour, action Action) Group {
	switch {
	case team == TeamRed && action == ActionClue:
		return RedSpyMasters
	case team == TeamRed:
		return RedGuessers
	case action == ActionClue:
		return BlueSpyMasters
	default:
		return BlueGuessers
	}
}

type Player struct {
	Name   string `json:"name"`
	Group  Group  `json:"group"`
	IsHost bool   `json:"is_host"`
}

type Team struct {
	SpyMasters map[string]Player `json:"spy_masters"`
	Guessers   map[string]Player `json:"guessers"`
}

// Teams is the full roster of a game, split into its five groups.
type Teams struct {
	Blue       Team              `json:"blue"`
	Red        Team              `json:"red"`
	Spectators map[string]Player `json:"spectators"`
}

type Clue struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Guess selects a tile by its board index.
type Guess struct {
	TileIndex int `json:"tile_index"`
}

// Event is an entry in a game's history. Exactly one field is set.
type Event struct {
	Clue  *Clue  `json:"Clue,omitempty"`
	Guess *Guess `json:"Guess,omitempty"`
}

type Tile struct {
	Word   string     `json:"word"`
	Colour TileColour `json:"colour"`
}

// Game holds the complete state of one game.
type Game struct {
	IsStarted  bool
	Tiles      [BoardSize]Tile
	HostID     string
	TeamTurn   TeamColour
	NextAction Action
	// Winner is empty until the game is over.
	Winner  TeamColour
	History []Event

	// players maps every participant to their record. Group membership lives
	// on the record, so a player can never be in two groups at once.
	players map[string]Player
}

// New returns an unstarted game with an empty roster.
func New(tiles [BoardSize]Tile, hostID string, firstTurn TeamColour) *Game {
	return &Game{
		Tiles:      tiles,
		HostID:     hostID,
		TeamTurn:   firstTurn,
		NextAction: ActionClue,
		History:    []Event{},
		players:    make(map[string]Player),
	}
}

func (g *Game) PlayerExists(playerID string) bool {
	_, ok := g.players[playerID]
	return ok
}

func (g *Game) Player(playerID string) (Player, bool) {
	p, ok := g.players[playerID]
	return p, ok
}

// IsSpyMaster reports whether playerID is currently a spy master of either team.
func (g *Game) IsSpyMaster(playerID string) bool {
	p, ok := g.players[playerID]
	return ok && p.Group.IsSpyMaster()
}

// IsEmpty reports whether the game has no participants left.
func (g *Game) IsEmpty() bool {
	return len(g.players) == 0
}

func (g *Game) IsOver() bool {
	return g.Winner != ""
}

func (g *Game) Teams() Teams {
	teams := Teams{
		Blue:       Team{SpyMasters: map[string]Player{}, Guessers: map[string]Player{}},
		Red:        Team{SpyMasters: map[string]Player{}, Guessers: map[string]Player{}},
		Spectators: map[string]Player{},
	}
	for id, p := range g.players {
		switch p.Group {
		case BlueGuessers:
			teams.Blue.Guessers[id] = p
		case BlueSpyMasters:
			teams.Blue.SpyMasters[id] = p
		case RedGuessers:
			teams.Red.Guessers[id] = p
		case RedSpyMasters:
			teams.Red.SpyMasters[id] = p
		default:
			teams.Spectators[id] = p
		}
	}
	return teams
}

func (g *Game) Revealed(index int) bool {
	for _, ev := range g.History {
		if ev.Guess != nil && ev.Guess.TileIndex == index {
			return true
		}
	}
	return false
}

func (g *Game) countGroup(group Group) int {
	n := 0
	for _, p := range g.players {
		if p.Group == group {
			n++
		}
	}
	return n
}

type gameJSON struct {
	IsStarted  bool            `json:"is_started"`
	Tiles      [BoardSize]Tile `json:"tiles"`
	Teams      Teams           `json:"teams"`
	HostID     string          `json:"host_id"`
	TeamTurn   TeamColour      `json:"team_turn"`
	NextAction Action          `json:"next_action"`
	Winner     TeamColour      `json:"winner,omitempty"`
	History    []Event         `json:"history"`
}

// MarshalJSON encodes the game as a snapshot with the roster split into groups.
func (g *Game) MarshalJSON() ([]byte, error) {
	history := g.History
	if history == nil {
		history = []Event{}
	}
	return json.Marshal(gameJSON{
		IsStarted:  g.IsStarted,
		Tiles:      g.Tiles,
		Teams:      g.Teams(),
		HostID:     g.HostID,
		TeamTurn:   g.TeamTurn,
		NextAction: g.NextAction,
		Winner:     g.Winner,
		History:    history,
	})
}

func (g *Game) UnmarshalJSON(data []byte) error {
	var raw gameJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	players := make(map[string]Player)
	groups := []struct {
		group   Group
		members map[string]Player
	}{
		{Spectators, raw.Teams.Spectators},
		{BlueGuessers, raw.Teams.Blue.Guessers},
		{BlueSpyMasters, raw.Teams.Blue.SpyMasters},
		{RedGuessers, raw.Teams.Red.Guessers},
		{RedSpyMasters, raw.Teams.Red.SpyMasters},
	}
	for _, grp := range groups {
		for id, p := range grp.members {
			if _, dup := players[id]; dup {
				return fmt.Errorf("player %s appears in more than one group", id)
			}
			p.Group = grp.group
			players[id] = p
		}
	}

	history := raw.History
	if history == nil {
		history = []Event{}
	}

	*g = Game{
		IsStarted:  raw.IsStarted,
		Tiles:      raw.Tiles,
		HostID:     raw.HostID,
		TeamTurn:   raw.TeamTurn,
		NextAction: raw.NextAction,
		Winner:     raw.Winner,
		History:    history,
		players:    players,
	}
	return nil
}
