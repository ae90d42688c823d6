// Package icon renders a portfolio as a tiny fixed-size bar chart, meant
// to be used as a status (tray) icon. Rendering is a pure function of the
// bar list: no state survives between calls and no I/O happens besides
// the optional PNG encode.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

const (
	// Width and Height of the canvas, in pixels.
	Width  = 16
	Height = 16
	// MinBarWidth is the width of a one-unit bar.
	MinBarWidth = 2
	// MaxBars is the canvas capacity in bar units.
	MaxBars = Width / MinBarWidth
)

// Bar is one renderable deflection. Value is normalized into [-1, 1]
// against the [Min, Max] clip bounds; the sign of the normalized value
// selects the anchor (positive bars grow up from the bottom, negative
// ones down from the top) and the color.
type Bar struct {
	Value float64
	Min   float64 // defaults to 0 when Min and Max are both zero
	Max   float64 // defaults to 100 when Min and Max are both zero
	Span  int     // width in bar units, defaults to 1

	Positive color.NRGBA
	Negative color.NRGBA
}

func (b Bar) span() int {
	if b.Span < 1 {
		return 1
	}
	return b.Span
}

// normalized maps Value into [-1, 1] full-scale deflection. Out-of-range
// values normalize beyond the unit range; the pixel height is clamped to
// the canvas anyway.
func (b Bar) normalized() float64 {
	min, max := b.Min, b.Max
	if min == 0 && max == 0 {
		max = 100
	}
	return 2*(b.Value-min)/(max-min) - 1
}

// Render draws the bars left to right, in input order, each spanning
// Span x 2 pixels. It fails when the bars do not fit the canvas; an empty
// list yields a cleared (fully transparent) canvas.
func Render(bars []Bar) (*image.NRGBA, error) {
	units := 0
	for _, b := range bars {
		units += b.span()
	}
	if units > MaxBars {
		return nil, fmt.Errorf("icon: max supported bars count is %d", MaxBars)
	}

	// image.NewNRGBA starts zeroed, i.e. cleared.
	img := image.NewNRGBA(image.Rect(0, 0, Width, Height))

	x := 0
	for _, b := range bars {
		width := b.span() * MinBarWidth
		n := b.normalized()

		height := int(math.Round(math.Abs(n) * Height))
		if height < 1 {
			height = 1
		}
		if height > Height {
			height = Height
		}

		y, c := 0, b.Negative
		if n >= 0 {
			y, c = Height-height, b.Positive
		}
		fill(img, x, y, width, height, c)
		x += width
	}
	return img, nil
}

// EncodePNG renders the bars and writes the canvas as a PNG.
func EncodePNG(w io.Writer, bars []Bar) error {
	img, err := Render(bars)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func fill(img *image.NRGBA, x, y, width, height int, c color.NRGBA) {
	for i := x; i < x+width; i++ {
		for j := y; j < y+height; j++ {
			img.SetNRGBA(i, j, c)
		}
	}
}
