package pong

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Canvas is the surface a frame is composed on.
type Canvas interface {
	Clear(c color.Color)
	FillRect(r image.Rectangle, c color.Color)
	DrawLabel(l Label, face font.Face, c color.Color)
	Present()
}

// Renderer draws paddles, ball and scores. It never mutates the state.
type Renderer struct {
	face       font.Face
	restartKey string
}

func NewRenderer(face font.Face, restartKey string) *Renderer {
	return &Renderer{
		face:       face,
		restartKey: restartKey,
	}
}

// Render composes one frame of s on c and presents it.
func (r *Renderer) Render(s *GameState, c Canvas) {
	c.Clear(BgColor)

	c.FillRect(image.Rect(0, s.Player1.Y, PaddleWidth, s.Player1.Y+PaddleHeight), ObjColor)
	c.FillRect(image.Rect(ScreenWidth-PaddleWidth, s.Player2.Y, ScreenWidth, s.Player2.Y+PaddleHeight), ObjColor)
	c.FillRect(image.Rect(s.Ball.X, s.Ball.Y, s.Ball.X+BallSize, s.Ball.Y+BallSize), ObjColor)

	for _, l := range ScoreLabels(s) {
		c.DrawLabel(l, r.face, ObjColor)
	}

	if s.GameOver {
		c.DrawLabel(r.caption(), r.face, ObjColor)
	}

	c.Present()
}

// ScoreLabels returns the two score labels, player 1 top-left and player 2
// top-right.
func ScoreLabels(s *GameState) [2]Label {
	return [2]Label{
		{Text: fmt.Sprintf("Player 1: %d", s.Player1.Score), At: image.Pt(player1LabelX, labelY)},
		{Text: fmt.Sprintf("Player 2: %d", s.Player2.Score), At: image.Pt(player2LabelX, labelY)},
	}
}

// caption is centered horizontally, a third of the way down the screen.
func (r *Renderer) caption() Label {
	l := Label{Text: fmt.Sprintf("Press '%s' to restart", r.restartKey)}
	b := l.Bounds(r.face)
	l.At = image.Pt((ScreenWidth-b.Dx())/2, ScreenHeight/3)
	return l
}
