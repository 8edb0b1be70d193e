/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package codenames

// outcome classifies an applied event for the turn transition table.
type outcome int

const (
	clueGiven outcome = iota
	guessAgain
	turnOver
)

// transitions maps the current action and an event outcome to the next action.
// Pairs missing from the table cannot happen once an event has been validated.
var transitions = map[Action]map[outcome]Action{
	ActionClue: {
		clueGiven: ActionGuess,
	},
	ActionGuess: {
		guessAgain: ActionGuess,
		turnOver:   ActionClue,
	},
}

func (g *Game) advance(o outcome) {
	next, ok := transitions[g.NextAction][o]
	if !ok {
		panic("codenames: no transition from " + string(g.NextAction))
	}
	if o == turnOver {
		g.TeamTurn = g.TeamTurn.Other()
	}
	g.NextAction = next
}

// Start begins the game. Only the host may start it, and each team needs
// exactly one spy master and at least one guesser.
func (g *Game) Start(playerID string) error {
	if g.IsStarted {
		return ErrGameAlreadyStarted
	}
	if playerID != g.HostID {
		return ErrNotHost
	}
	for _, team := range []TeamColour{TeamBlue, TeamRed} {
		if g.countGroup(groupFor(team, ActionClue)) != 1 || g.countGroup(groupFor(team, ActionGuess)) == 0 {
			return ErrNotEnoughPlayers
		}
	}

	g.IsStarted = true

	return nil
}

// AddPlayer adds a new participant. Players always join as spectators,
// whatever group the record asks for.
func (g *Game) AddPlayer(playerID string, player Player) error {
	if g.PlayerExists(playerID) {
		return ErrPlayerAlreadyInGame
	}

	player.Group = Spectators
	g.players[playerID] = player

	return nil
}

func (g *Game) MovePlayer(playerID string, newGroup Group) error {
	p, ok := g.players[playerID]
	if !ok {
		return ErrNoSuchPlayer
	}
	if !newGroup.Valid() {
		return ErrInvalidAction
	}

	p.Group = newGroup
	g.players[playerID] = p

	return nil
}

func (g *Game) RemovePlayer(playerID string) error {
	if !g.PlayerExists(playerID) {
		return ErrNoSuchPlayer
	}

	delete(g.players, playerID)

	return nil
}

// ProvideClue records a clue from the active team's spy master.
func (g *Game) ProvideClue(playerID string, clue Clue) error {
	if err := g.validateTurn(playerID, ActionClue); err != nil {
		return err
	}
	if clue.Word == "" || clue.Count < 0 {
		return ErrInvalidClue
	}

	g.History = append(g.History, Event{Clue: &clue})
	g.advance(clueGiven)

	return nil
}

// Guess reveals a tile on behalf of the active team's guessers.
func (g *Game) Guess(playerID string, guess Guess) error {
	if err := g.validateTurn(playerID, ActionGuess); err != nil {
		return err
	}
	if guess.TileIndex < 0 || guess.TileIndex >= BoardSize {
		return &TileIndexOutOfBoundsError{TileIndex: guess.TileIndex}
	}
	if g.Revealed(guess.TileIndex) {
		return ErrTileAlreadyRevealed
	}

	g.History = append(g.History, Event{Guess: &guess})

	if winner, over := g.decideWinner(guess.TileIndex); over {
		g.Winner = winner
		return nil
	}

	if CanGuessMore(g.Tiles, g.History, g.TeamTurn) {
		g.advance(guessAgain)
	} else {
		g.advance(turnOver)
	}

	return nil
}

// decideWinner checks the terminal conditions after the tile at index was
// revealed. Revealing the assassin loses the game for the active team;
// otherwise a team wins once all of its tiles are revealed.
func (g *Game) decideWinner(index int) (TeamColour, bool) {
	if g.Tiles[index].Colour == TileBlack {
		return g.TeamTurn.Other(), true
	}

	for _, team := range []TeamColour{g.TeamTurn, g.TeamTurn.Other()} {
		if g.Remaining(team) == 0 {
			return team, true
		}
	}

	return "", false
}

func (g *Game) Remaining(team TeamColour) int {
	n := 0
	for i, tile := range g.Tiles {
		if tile.Colour == team.Tile() && !g.Revealed(i) {
			n++
		}
	}
	return n
}

// CanGuessMore reports whether the active team may keep guessing after the
// most recent event in history. The latest clue bounds the run: the turn
// ends as soon as the latest guess missed the team's colour, or once the
// number of guesses made for the clue reaches its count.
func CanGuessMore(tiles [BoardSize]Tile, history []Event, team TeamColour) bool {
	guesses := 0
	for i := len(history) - 1; i >= 0; i-- {
		ev := history[i]
		switch {
		case ev.Clue != nil:
			return guesses < ev.Clue.Count
		case ev.Guess != nil:
			// Earlier guesses in the run were checked when they were made.
			if guesses == 0 && tiles[ev.Guess.TileIndex].Colour != team.Tile() {
				return false
			}
			guesses++
		}
	}

	return false
}

func (g *Game) validateTurn(playerID string, action Action) error {
	if !g.IsStarted {
		return ErrGameNotStarted
	}
	if g.IsOver() {
		return ErrGameOver
	}
	if g.NextAction != action {
		return ErrInvalidAction
	}

	p, ok := g.players[playerID]
	if !ok {
		return ErrNoSuchPlayer
	}
	if expected := groupFor(g.TeamTurn, action); p.Group != expected {
		return &IllegalPlayerGroupError{Expected: expected, Actual: p.Group}
	}

	return nil
}
