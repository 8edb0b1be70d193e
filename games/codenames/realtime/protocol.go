/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package realtime

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Seednode/codenames/games/codenames"
)

// Messages use external tagging: unit variants are bare strings and
// variants with data are single-key objects, e.g.
//
//	"Heartbeat"
//	{"EventRequest":"StartGame"}
//	{"EventRequest":{"Guess":{"tile_index":3}}}

var ErrUnknownMessage = errors.New("unknown message")

// EventKind names an EventRequest variant.
type EventKind string

const (
	StartGame    EventKind = "StartGame"
	AddPlayer    EventKind = "AddPlayer"
	MovePlayer   EventKind = "MovePlayer"
	RemovePlayer EventKind = "RemovePlayer"
	GiveClue     EventKind = "Clue"
	MakeGuess    EventKind = "Guess"
)

// EventRequest is a mutation requested by a connected player. Only the
// field matching Kind is meaningful.
type EventRequest struct {
	Kind     EventKind
	Name     string
	NewGroup codenames.Group
	Clue     codenames.Clue
	Guess    codenames.Guess
}

type addPlayerBody struct {
	Name string `json:"name"`
}

type movePlayerBody struct {
	NewGroup codenames.Group `json:"new_group"`
}

// ClientMessage is a single inbound frame. Event is nil for heartbeats.
type ClientMessage struct {
	Event *EventRequest
}

func (m ClientMessage) IsHeartbeat() bool {
	return m.Event == nil
}

// StateUpdate is the only outbound frame.
type StateUpdate struct {
	StateUpdate *codenames.View `json:"StateUpdate"`
}

func ParseClientMessage(data []byte) (ClientMessage, error) {
	tag, body, err := variant(data)
	if err != nil {
		return ClientMessage{}, err
	}

	switch tag {
	case "Heartbeat":
		return ClientMessage{}, nil
	case "EventRequest":
		if body == nil {
			return ClientMessage{}, fmt.Errorf("%w: EventRequest without a body", ErrUnknownMessage)
		}
		var req EventRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return ClientMessage{}, err
		}
		return ClientMessage{Event: &req}, nil
	}

	return ClientMessage{}, fmt.Errorf("%w: %q", ErrUnknownMessage, tag)
}

// UnmarshalJSON decodes an externally tagged EventRequest variant.
func (e *EventRequest) UnmarshalJSON(data []byte) error {
	tag, body, err := variant(data)
	if err != nil {
		return err
	}

	req := EventRequest{Kind: EventKind(tag)}

	switch req.Kind {
	case StartGame, RemovePlayer:
		*e = req
		return nil
	case AddPlayer, MovePlayer, GiveClue, MakeGuess:
		if body == nil {
			return fmt.Errorf("%w: %s without a body", ErrUnknownMessage, tag)
		}
	default:
		return fmt.Errorf("%w: event %q", ErrUnknownMessage, tag)
	}

	switch req.Kind {
	case AddPlayer:
		var b addPlayerBody
		err = json.Unmarshal(body, &b)
		req.Name = b.Name
	case MovePlayer:
		var b movePlayerBody
		err = json.Unmarshal(body, &b)
		req.NewGroup = b.NewGroup
	case GiveClue:
		err = json.Unmarshal(body, &req.Clue)
	case MakeGuess:
		err = json.Unmarshal(body, &req.Guess)
	}
	if err != nil {
		return fmt.Errorf("invalid %s: %w", tag, err)
	}

	*e = req
	return nil
}

// MarshalJSON encodes the request in the same form UnmarshalJSON accepts.
func (e EventRequest) MarshalJSON() ([]byte, error) {
	var body any

	switch e.Kind {
	case StartGame, RemovePlayer:
		return json.Marshal(string(e.Kind))
	case AddPlayer:
		body = addPlayerBody{Name: e.Name}
	case MovePlayer:
		body = movePlayerBody{NewGroup: e.NewGroup}
	case GiveClue:
		body = e.Clue
	case MakeGuess:
		body = e.Guess
	default:
		return nil, fmt.Errorf("%w: event %q", ErrUnknownMessage, e.Kind)
	}

	return json.Marshal(map[string]any{string(e.Kind): body})
}

// MarshalJSON encodes the message in the same form ParseClientMessage accepts.
func (m ClientMessage) MarshalJSON() ([]byte, error) {
	if m.Event == nil {
		return []byte(`"Heartbeat"`), nil
	}
	return json.Marshal(map[string]*EventRequest{"EventRequest": m.Event})
}

// variant splits an externally tagged value into its tag and body. Body is
// nil for unit variants, which may be written as "Tag" or {"Tag":null}.
func variant(data []byte) (string, json.RawMessage, error) {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return "", nil, err
		}
		return tag, nil, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, err
	}
	if len(obj) != 1 {
		return "", nil, fmt.Errorf("%w: expected exactly one tag, got %d", ErrUnknownMessage, len(obj))
	}

	for tag, body := range obj {
		if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
			body = nil
		}
		return tag, body, nil
	}

	return "", nil, ErrUnknownMessage
}
