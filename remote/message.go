package remote

import (
	"github.com/jtestard/go-pingpong/pong"
)

// WsMessage is a key event sent by a remote controller.
type WsMessage struct {
	Type   string `json:"type"`
	Actor  string `json:"actor"`
	Target string `json:"target"`
}

// WsGameState is the snapshot sent to every connected client after each
// tick.
type WsGameState struct {
	Player1 pong.Paddle `json:"player1"`
	Player2 pong.Paddle `json:"player2"`
	Ball    pong.Ball   `json:"ball"`
	State   string      `json:"status"`
}

func snapshot(s pong.GameState) WsGameState {
	return WsGameState{
		Player1: s.Player1,
		Player2: s.Player2,
		Ball:    s.Ball,
		State:   s.Phase().String(),
	}
}

var targets = map[string]pong.Key{
	"up":      pong.KeyUp,
	"down":    pong.KeyDown,
	"restart": pong.KeyRestart,
}

// toEvent converts a message into a game event. Only paddle 1 can be
// driven remotely.
func (m WsMessage) toEvent() (pong.Event, bool) {
	if m.Actor != "" && m.Actor != "p1" {
		return pong.Event{}, false
	}

	key, ok := targets[m.Target]
	if !ok {
		return pong.Event{}, false
	}

	switch m.Type {
	case "keydown":
		return pong.Event{Type: pong.KeyPressed, Key: key}, true
	case "keyup":
		return pong.Event{Type: pong.KeyReleased, Key: key}, true
	}
	return pong.Event{}, false
}
