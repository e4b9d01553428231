package pong

import (
	"image/color"
)

// Position is a set of coordinates in 2-D plan
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GetCenter returns the top-left position that centers an object of the
// given size on screen
func GetCenter(w, h int) Position {
	return Position{
		X: ScreenWidth/2 - w/2,
		Y: ScreenHeight/2 - h/2,
	}
}

// Phase is an enum that represents all possible game phases
type Phase byte

const (
	PlayState Phase = iota
	GameOverState
)

var phaseName = map[Phase]string{
	PlayState:     "playing",
	GameOverState: "over",
}

func (p Phase) String() string {
	return phaseName[p]
}

var (
	BgColor  = color.Black
	ObjColor = color.White
)
