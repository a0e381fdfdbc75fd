package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/oled/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// PageImage is a 1-bit per pixel monochrome image laid out for vertical
// addressing: every byte holds 8 vertically stacked pixels (LSB on top) of one
// page, and the pages of a column are stored next to each other.
//
// The byte for pixel (x, y) is Pix[x*Pages + y/8], the bit is y&7.
type PageImage struct {
	// Rect is the image bounding box, always anchored at (0, 0).
	Rect image.Rectangle

	// Pix are the packed pixels.
	Pix []byte

	// Pages is the number of 8 pixel tall pages per column.
	Pages int
}

// NewPageImage allocates a zeroed image. Heights are rounded up to whole pages.
func NewPageImage(w, h int) *PageImage {
	pages := (h + 7) >> 3
	return &PageImage{
		Rect:  image.Rect(0, 0, w, h),
		Pix:   make([]byte, pages*w),
		Pages: pages,
	}
}

// NewPageImageFrom wraps an existing buffer. It panics when pix is too small to
// hold w×h pixels.
func NewPageImageFrom(pix []byte, w, h int) *PageImage {
	pages := (h + 7) >> 3
	if len(pix) < pages*w {
		panic("pixel: page buffer too small")
	}
	return &PageImage{
		Rect:  image.Rect(0, 0, w, h),
		Pix:   pix[:pages*w],
		Pages: pages,
	}
}

func (p *PageImage) Bounds() image.Rectangle {
	return p.Rect
}

func (p *PageImage) ColorModel() color.Model {
	return MonoModel
}

// PixOffset returns the index of the byte holding (x, y).
func (p *PageImage) PixOffset(x, y int) int {
	return x*p.Pages + y>>3
}

// In reports whether (x, y) is inside the image.
func (p *PageImage) In(x, y int) bool {
	return (image.Point{X: x, Y: y}).In(p.Rect)
}

// Lit reports whether the pixel at (x, y) is on; pixels outside are off.
func (p *PageImage) Lit(x, y int) bool {
	if !p.In(x, y) {
		return false
	}
	return p.Pix[p.PixOffset(x, y)]&(1<<uint(y&7)) != 0
}

// SetLit turns the pixel at (x, y) on or off. Pixels outside are ignored.
func (p *PageImage) SetLit(x, y int, on bool) {
	if !p.In(x, y) {
		return
	}

	var (
		pos = p.PixOffset(x, y)
		bit = byte(1) << uint(y&7)
	)
	if on {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *PageImage) At(x, y int) color.Color {
	if !p.In(x, y) {
		return color.Transparent
	}
	return Mono{On: p.Lit(x, y)}
}

func (p *PageImage) Set(x, y int, c color.Color) {
	p.SetLit(x, y, Lit(c))
}

// Fill sets every pixel inside Rect. Padding bits of a partial last page are
// left alone.
func (p *PageImage) Fill(c color.Color) {
	on := Lit(c)
	for x := 0; x < p.Rect.Dx(); x++ {
		for y := 0; y < p.Rect.Dy(); y++ {
			p.SetLit(x, y, on)
		}
	}
}

func (p *PageImage) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// Interface checks.
var _ Image = (*PageImage)(nil)
