package pong

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

// recorder is a Canvas that logs every call.
type recorder struct {
	calls []string
	rects []image.Rectangle
	texts []Label
}

func (r *recorder) Clear(c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("clear %v", c))
}

func (r *recorder) FillRect(rect image.Rectangle, c color.Color) {
	r.calls = append(r.calls, "rect")
	r.rects = append(r.rects, rect)
}

func (r *recorder) DrawLabel(l Label, face font.Face, c color.Color) {
	r.calls = append(r.calls, "label")
	r.texts = append(r.texts, l)
}

func (r *recorder) Present() {
	r.calls = append(r.calls, "present")
}

func testFace(t *testing.T) font.Face {
	face, err := LoadFont(24, 72)
	require.NoError(t, err)
	return face
}

func TestRender(t *testing.T) {
	r := NewRenderer(testFace(t), "R")
	s := NewGameState()
	s.Player1.Y = 50
	s.Player2.Y = 300
	s.Ball.Position = Position{X: 100, Y: 120}
	s.Player1.Score = 2
	s.Player2.Score = 7
	want := *s

	var c recorder
	r.Render(s, &c)

	assert.Equal(t, []string{
		fmt.Sprintf("clear %v", BgColor),
		"rect", "rect", "rect",
		"label", "label",
		"present",
	}, c.calls)
	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 50, 10, 110),
		image.Rect(630, 300, 640, 360),
		image.Rect(100, 120, 110, 130),
	}, c.rects)
	assert.Equal(t, []Label{
		{Text: "Player 1: 2", At: image.Pt(10, 10)},
		{Text: "Player 2: 7", At: image.Pt(490, 10)},
	}, c.texts)
	assert.Equal(t, want, *s)
}

func TestRenderGameOverCaption(t *testing.T) {
	face := testFace(t)
	r := NewRenderer(face, "R")
	s := NewGameState()
	s.GameOver = true

	var c recorder
	r.Render(s, &c)

	require.Len(t, c.texts, 3)
	caption := c.texts[2]
	assert.Equal(t, "Press 'R' to restart", caption.Text)

	b := caption.Bounds(face)
	assert.InDelta(t, ScreenWidth/2, (b.Min.X+b.Max.X)/2, 1)
	assert.Equal(t, "present", c.calls[len(c.calls)-1])
}

func TestLabelMetrics(t *testing.T) {
	face := testFace(t)
	l := Label{Text: "Player 1: 0", At: image.Pt(10, 10)}

	b := l.Bounds(face)
	assert.Equal(t, image.Pt(10, 10), b.Min)
	assert.Greater(t, b.Dx(), 0)
	assert.Equal(t, face.Metrics().Height.Ceil(), b.Dy())

	wider := Label{Text: "Player 1: 100", At: l.At}.Bounds(face)
	assert.Greater(t, wider.Dx(), b.Dx())

	dot := l.Dot(face)
	assert.Equal(t, 10, dot.X)
	assert.Equal(t, 10+face.Metrics().Ascent.Ceil(), dot.Y)
}
