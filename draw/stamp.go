package draw

import (
	"fmt"
	"image"
)

// Stamp is a small fixed pixel pattern, as offsets from its anchor point.
type Stamp []image.Point

// Stamps used by the decorative borders.
var (
	// Star is a plus: the anchor and its four direct neighbours.
	Star = Stamp{
		{0, 0},
		{-1, 0}, {1, 0},
		{0, -1}, {0, 1},
	}

	// Heart is an 8 pixel heart, pointing down, anchored at its centre.
	Heart = Stamp{
		{0, 0},
		{-1, -1}, {1, -1},
		{-2, 0}, {2, 0},
		{-1, 1}, {1, 1},
		{0, 2},
	}
)

// Draw plots the stamp anchored at (x, y).
func (s Stamp) Draw(dst Plotter, x, y int, on bool) error {
	p := &plot{dst: dst, on: on}
	for _, off := range s {
		p.set(x+off.X, y+off.Y)
	}
	return p.err
}

const (
	starSpacing   = 5
	heartSpacing  = 6
	squareSpacing = 4
	squareSize    = 3
)

// PlainBorder draws the rectangle outline.
func PlainBorder(dst Plotter, top, left, width, height int, on bool) error {
	return Rectangle(dst, top, left, width, height, on)
}

// StarBorder stamps a Star every 5 pixels along the rectangle outline.
func StarBorder(dst Plotter, top, left, width, height int, on bool) error {
	return stampBorder(dst, Star, starSpacing, top, left, width, height, on)
}

// HeartBorder stamps a Heart every 6 pixels along the rectangle outline.
func HeartBorder(dst Plotter, top, left, width, height int, on bool) error {
	return stampBorder(dst, Heart, heartSpacing, top, left, width, height, on)
}

// SquareBorder draws 3×3 square outlines every 4 pixels along the inside of the
// rectangle, so the squares touch all four sides.
func SquareBorder(dst Plotter, top, left, width, height int, on bool) error {
	p := &plot{dst: dst, on: on}
	square := func(top, left int) {
		p.merge(Rectangle(dst, top, left, squareSize, squareSize, on))
	}
	for x := left; x < left+width; x += squareSpacing {
		square(top, x)
		square(top+height-squareSize, x)
	}
	for y := top; y < top+height; y += squareSpacing {
		square(y, left)
		square(y, left+width-squareSize)
	}
	return p.err
}

// stampBorder walks the outline of a rectangle at a fixed spacing and stamps s
// at every sampled point: columns along the top and bottom rows first, then rows
// along the left and right columns.
func stampBorder(dst Plotter, s Stamp, spacing, top, left, width, height int, on bool) error {
	if width <= 0 || height <= 0 {
		return nil
	}

	p := &plot{dst: dst, on: on}
	for x := left; x < left+width; x += spacing {
		p.merge(s.Draw(dst, x, top, on))
		p.merge(s.Draw(dst, x, top+height-1, on))
	}
	for y := top; y < top+height; y += spacing {
		p.merge(s.Draw(dst, left, y, on))
		p.merge(s.Draw(dst, left+width-1, y, on))
	}
	return p.err
}

// Border is a rectangle decoration style.
type Border uint8

// Border styles, in the order a style button cycles through them.
const (
	Plain Border = iota
	Hearts
	Stars
	Squares
)

// Borders is the number of border styles.
const Borders = 4

// Next returns the style that follows b, wrapping after Squares.
func (b Border) Next() Border {
	return (b + 1) % Borders
}

// Draw draws the rectangle decorated in style b.
func (b Border) Draw(dst Plotter, top, left, width, height int, on bool) error {
	switch b % Borders {
	case Hearts:
		return HeartBorder(dst, top, left, width, height, on)
	case Stars:
		return StarBorder(dst, top, left, width, height, on)
	case Squares:
		return SquareBorder(dst, top, left, width, height, on)
	default:
		return PlainBorder(dst, top, left, width, height, on)
	}
}

func (b Border) String() string {
	switch b {
	case Plain:
		return "plain"
	case Hearts:
		return "hearts"
	case Stars:
		return "stars"
	case Squares:
		return "squares"
	default:
		return fmt.Sprintf("border(%d)", uint8(b))
	}
}
