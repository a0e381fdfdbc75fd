// Package oled drives page-addressed monochrome OLED controllers of the SSD1306
// family over I²C.
//
// A Surface owns the packed pixel plane of one panel. Pixels are drawn into it
// with SetPixel (or the shapes in the draw sub-package) and the whole plane is
// pushed to the controller with SendFrame:
//
//	bus, err := oled.OpenI2C(nil)
//	...
//	s, err := oled.New(bus, &oled.Config{Width: 128, Height: 64})
//	...
//	if err = s.Configure(); err != nil { ... }
//	s.Fill(false)
//	draw.Rectangle(s, 3, 3, 122, 58, true)
//	if err = s.SendFrame(); err != nil { ... }
//
// A Surface is not safe for concurrent use.
package oled

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("OLED_DEBUG") != ""
}

// Errors
var (
	ErrBounds   = errors.New("oled: out of display bounds")
	ErrGeometry = errors.New("oled: unsupported display geometry")
	ErrNoBus    = errors.New("oled: no bus")
)

// Display defaults.
const (
	DefaultWidth  = 128
	DefaultHeight = 64
	DefaultAddr   = 0x3C

	maxWidth  = 128
	maxHeight = 64
)

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels, 1 to 128.
	Width int

	// Height of the display in pixels, a multiple of 8 up to 64.
	Height int

	// Addr is the I²C address of the controller.
	Addr uint16
}

// DefaultConfig is the 128×64 panel at the usual address.
var DefaultConfig = Config{
	Width:  DefaultWidth,
	Height: DefaultHeight,
	Addr:   DefaultAddr,
}
