/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package realtime

import (
	"encoding/json"
	"testing"

	"github.com/Seednode/codenames/games/codenames"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClientMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *EventRequest
	}{
		{"heartbeat", `"Heartbeat"`, nil},
		{"heartbeat as object", `{"Heartbeat":null}`, nil},
		{"start game", `{"EventRequest":"StartGame"}`, &EventRequest{Kind: StartGame}},
		{"remove player", ` {"EventRequest": "RemovePlayer"} `, &EventRequest{Kind: RemovePlayer}},
		{"add player", `{"EventRequest":{"AddPlayer":{"name":"Alice"}}}`, &EventRequest{Kind: AddPlayer, Name: "Alice"}},
		{"move player", `{"EventRequest":{"MovePlayer":{"new_group":"BlueSpyMasters"}}}`, &EventRequest{Kind: MovePlayer, NewGroup: codenames.BlueSpyMasters}},
		{"clue", `{"EventRequest":{"Clue":{"word":"animal","count":2}}}`, &EventRequest{Kind: GiveClue, Clue: codenames.Clue{Word: "animal", Count: 2}}},
		{"guess", `{"EventRequest":{"Guess":{"tile_index":24}}}`, &EventRequest{Kind: MakeGuess, Guess: codenames.Guess{TileIndex: 24}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ParseClientMessage([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg.Event)
			assert.Equal(t, tt.want == nil, msg.IsHeartbeat())
		})
	}
}

func TestParseClientMessageErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		unknown bool
	}{
		{"not json", `hello`, false},
		{"unknown tag", `"Ping"`, true},
		{"two tags", `{"Heartbeat":null,"EventRequest":"StartGame"}`, true},
		{"empty object", `{}`, true},
		{"event without body", `{"EventRequest":null}`, true},
		{"unknown event", `{"EventRequest":"EndGame"}`, true},
		{"data variant without body", `{"EventRequest":"Guess"}`, true},
		{"bad group", `{"EventRequest":{"MovePlayer":{"new_group":"Referees"}}}`, false},
		{"wrong type", `{"EventRequest":{"Guess":{"tile_index":"three"}}}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClientMessage([]byte(tt.input))
			require.Error(t, err)
			if tt.unknown {
				assert.ErrorIs(t, err, ErrUnknownMessage)
			}
		})
	}
}

func TestClientMessageEncoding(t *testing.T) {
	tests := []struct {
		msg  ClientMessage
		want string
	}{
		{ClientMessage{}, `"Heartbeat"`},
		{ClientMessage{Event: &EventRequest{Kind: StartGame}}, `{"EventRequest":"StartGame"}`},
		{ClientMessage{Event: &EventRequest{Kind: AddPlayer, Name: "Bob"}}, `{"EventRequest":{"AddPlayer":{"name":"Bob"}}}`},
		{ClientMessage{Event: &EventRequest{Kind: MovePlayer, NewGroup: codenames.RedGuessers}}, `{"EventRequest":{"MovePlayer":{"new_group":"RedGuessers"}}}`},
		{ClientMessage{Event: &EventRequest{Kind: GiveClue, Clue: codenames.Clue{Word: "sea", Count: 3}}}, `{"EventRequest":{"Clue":{"word":"sea","count":3}}}`},
		{ClientMessage{Event: &EventRequest{Kind: MakeGuess, Guess: codenames.Guess{TileIndex: 7}}}, `{"EventRequest":{"Guess":{"tile_index":7}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			data, err := json.Marshal(tt.msg)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			parsed, err := ParseClientMessage(data)
			require.NoError(t, err)
			assert.Equal(t, tt.msg, parsed)
		})
	}

	_, err := json.Marshal(EventRequest{Kind: "Nope"})
	assert.Error(t, err)
}
