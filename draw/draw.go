package draw

import (
	"image"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Plotter is a 1-bit drawing target.
//
// SetPixel returns an error for coordinates it can not address; the drawing
// functions in this package keep plotting the remaining points and return the
// first such error, so shapes crossing the edge of the target are clipped.
type Plotter interface {
	SetPixel(x, y int, on bool) error
}

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// plot collects the first error of a sequence of SetPixel calls.
type plot struct {
	dst Plotter
	on  bool
	err error
}

func (p *plot) set(x, y int) {
	if err := p.dst.SetPixel(x, y, p.on); err != nil && p.err == nil {
		p.err = err
	}
}

func (p *plot) merge(err error) {
	if err != nil && p.err == nil {
		p.err = err
	}
}
