package pong

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFont parses the bundled Go Regular TrueType font and returns a face of
// the given point size.
func LoadFont(size, dpi float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

// Label is a single line of text anchored at its top-left corner.
type Label struct {
	Text string
	At   image.Point
}

// Bounds returns the box the label occupies when drawn with face: the
// advance of the text by the line height of the face.
func (l Label) Bounds(face font.Face) image.Rectangle {
	w := font.MeasureString(face, l.Text).Ceil()
	h := face.Metrics().Height.Ceil()
	return image.Rect(l.At.X, l.At.Y, l.At.X+w, l.At.Y+h)
}

// Dot returns the baseline origin to draw the label at.
func (l Label) Dot(face font.Face) image.Point {
	return image.Pt(l.At.X, l.At.Y+face.Metrics().Ascent.Ceil())
}
