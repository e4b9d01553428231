package display

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"

	"github.com/jtestard/go-pingpong/pong"
)

var keyNames = map[string]ebiten.Key{
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD,
	"E": ebiten.KeyE, "F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH,
	"I": ebiten.KeyI, "J": ebiten.KeyJ, "K": ebiten.KeyK, "L": ebiten.KeyL,
	"M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO, "P": ebiten.KeyP,
	"Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX,
	"Y": ebiten.KeyY, "Z": ebiten.KeyZ,

	"UP":    ebiten.KeyUp,
	"DOWN":  ebiten.KeyDown,
	"LEFT":  ebiten.KeyLeft,
	"RIGHT": ebiten.KeyRight,
	"SPACE": ebiten.KeySpace,
	"ENTER": ebiten.KeyEnter,
}

// ParseKey looks up an ebiten key by name, case-insensitively.
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keyNames[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// Keyboard turns presses and releases of the bound keys into game events.
type Keyboard struct {
	bindings []binding
}

type binding struct {
	key  pong.Key
	phys ebiten.Key
}

// NewKeyboard binds the three logical keys to physical key names.
func NewKeyboard(up, down, restart string) (*Keyboard, error) {
	kb := &Keyboard{}
	for _, b := range []struct {
		key  pong.Key
		name string
	}{
		{pong.KeyUp, up},
		{pong.KeyDown, down},
		{pong.KeyRestart, restart},
	} {
		phys, err := ParseKey(b.name)
		if err != nil {
			return nil, err
		}
		kb.bindings = append(kb.bindings, binding{key: b.key, phys: phys})
	}
	return kb, nil
}

// Pending reports the bound keys that went down or up since the last frame.
func (kb *Keyboard) Pending() []pong.Event {
	var events []pong.Event
	for _, b := range kb.bindings {
		if inpututil.IsKeyJustPressed(b.phys) {
			events = append(events, pong.Event{Type: pong.KeyPressed, Key: b.key})
		}
		if inpututil.IsKeyJustReleased(b.phys) {
			events = append(events, pong.Event{Type: pong.KeyReleased, Key: b.key})
		}
	}
	return events
}
