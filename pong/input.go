package pong

import (
	"github.com/rs/zerolog"
)

// Key is a logical game key.
type Key byte

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyRestart
)

// EventType tells whether a key went down or up.
type EventType byte

const (
	KeyPressed EventType = iota + 1
	KeyReleased
)

// Event is a single input event delivered by an EventSource.
type Event struct {
	Type EventType
	Key  Key
}

// InputHandler maps key events onto the movement intent flags and the
// restart trigger.
type InputHandler struct {
	log zerolog.Logger
}

func NewInputHandler(log zerolog.Logger) *InputHandler {
	return &InputHandler{log: log}
}

// Handle applies ev to s. Unknown events are ignored.
func (h *InputHandler) Handle(ev Event, s *GameState) {
	switch ev.Type {
	case KeyPressed:
		switch ev.Key {
		case KeyUp:
			s.MoveUp = true
		case KeyDown:
			s.MoveDown = true
		case KeyRestart:
			if !s.GameOver {
				return
			}
			s.reset()
			h.log.Info().
				Int("player1", s.Player1.Score).
				Int("player2", s.Player2.Score).
				Msg("Game restarted!")
		}
	case KeyReleased:
		switch ev.Key {
		case KeyUp:
			s.MoveUp = false
		case KeyDown:
			s.MoveDown = false
		}
	}
}
