// Package display connects the game to ebiten: the screen canvas and the
// keyboard event source.
package display

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"github.com/jtestard/go-pingpong/pong"
)

// Canvas draws frames onto the ebiten screen image.
type Canvas struct {
	log    zerolog.Logger
	screen *ebiten.Image
	pixel  *ebiten.Image
}

// NewCanvas allocates the 1x1 image every rectangle is scaled from. Draw
// errors cannot stop a tick, they are logged at debug level.
func NewCanvas(log zerolog.Logger) (*Canvas, error) {
	pixel, err := ebiten.NewImage(1, 1, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	if err := pixel.Fill(color.White); err != nil {
		return nil, err
	}
	return &Canvas{log: log, pixel: pixel}, nil
}

// SetScreen sets the image the next frame is drawn on.
func (c *Canvas) SetScreen(screen *ebiten.Image) {
	c.screen = screen
}

func (c *Canvas) Clear(clr color.Color) {
	if err := c.screen.Fill(clr); err != nil {
		c.log.Debug().Err(err).Msg("clear failed")
	}
}

func (c *Canvas) FillRect(r image.Rectangle, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorM.Scale(colorScale(clr))
	if err := c.screen.DrawImage(c.pixel, op); err != nil {
		c.log.Debug().Err(err).Msg("fill rect failed")
	}
}

func (c *Canvas) DrawLabel(l pong.Label, face font.Face, clr color.Color) {
	dot := l.Dot(face)
	text.Draw(c.screen, l.Text, face, dot.X, dot.Y, clr)
}

// Present is a no-op: ebiten shows the screen once Update returns.
func (c *Canvas) Present() {}

func colorScale(clr color.Color) (r, g, b, a float64) {
	cr, cg, cb, ca := clr.RGBA()
	if ca == 0 {
		return 0, 0, 0, 0
	}
	// Un-premultiply, ColorM works on straight alpha.
	return float64(cr) / float64(ca), float64(cg) / float64(ca), float64(cb) / float64(ca), float64(ca) / 0xffff
}
