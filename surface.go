package oled

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/oled/pixel"
)

// Surface is the in-memory pixel plane of one display, together with the bus
// the controller is reached through.
//
// The data buffer starts with the data frame marker followed by the packed
// pixel plane, so a frame goes out in a single write. The byte holding pixel
// (x, y) is at index x*Pages() + y/8 + 1, bit y&7.
type Surface struct {
	bus    Bus
	addr   uint16
	width  int
	height int
	pages  int
	buf    []byte
	cmd    [2]byte
	plane  *pixel.PageImage
	halted bool
}

// New allocates a cleared surface for the controller at config.Addr on bus.
// Zero config fields take their DefaultConfig values.
func New(bus Bus, config *Config) (*Surface, error) {
	if bus == nil {
		return nil, ErrNoBus
	}

	c := DefaultConfig
	if config != nil {
		if config.Width != 0 {
			c.Width = config.Width
		}
		if config.Height != 0 {
			c.Height = config.Height
		}
		if config.Addr != 0 {
			c.Addr = config.Addr
		}
	}

	if c.Width < 1 || c.Width > maxWidth || c.Height < 8 || c.Height > maxHeight || c.Height%8 != 0 {
		return nil, fmt.Errorf("%w %dx%d", ErrGeometry, c.Width, c.Height)
	}

	s := &Surface{
		bus:    bus,
		addr:   c.Addr,
		width:  c.Width,
		height: c.Height,
		pages:  c.Height >> 3,
	}
	s.buf = make([]byte, s.pages*s.width+1)
	s.buf[0] = dataMarker
	s.cmd[0] = commandMarker
	s.plane = pixel.NewPageImageFrom(s.buf[1:], s.width, s.height)
	return s, nil
}

func (s *Surface) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d at %#02x", s.width, s.height, s.addr)
}

// Width in pixels.
func (s *Surface) Width() int { return s.width }

// Height in pixels.
func (s *Surface) Height() int { return s.height }

// Pages is the number of 8 pixel tall pages.
func (s *Surface) Pages() int { return s.pages }

// Addr is the bus address of the controller.
func (s *Surface) Addr() uint16 { return s.addr }

// Bytes returns the data frame: the marker byte followed by the packed plane.
// The slice aliases the surface.
func (s *Surface) Bytes() []byte { return s.buf }

// Plane returns the packed pixel plane without the marker byte. The slice
// aliases the surface.
func (s *Surface) Plane() []byte { return s.buf[1:] }

// SetPixel turns the pixel at (x, y) on or off. Coordinates outside the display
// are rejected with an error wrapping ErrBounds and leave the surface unchanged.
func (s *Surface) SetPixel(x, y int, on bool) error {
	if !s.plane.In(x, y) {
		return fmt.Errorf("%w: pixel (%d,%d) on %dx%d", ErrBounds, x, y, s.width, s.height)
	}
	s.plane.SetLit(x, y, on)
	return nil
}

// Pixel reports whether the pixel at (x, y) is on. Pixels outside the display
// are off.
func (s *Surface) Pixel(x, y int) bool {
	return s.plane.Lit(x, y)
}

// Fill sets every pixel of the display to on.
func (s *Surface) Fill(on bool) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.plane.SetLit(x, y, on)
		}
	}
}

// Clear turns all pixels off.
func (s *Surface) Clear() {
	s.Fill(false)
}

func (s *Surface) Bounds() image.Rectangle {
	return s.plane.Bounds()
}

func (s *Surface) ColorModel() color.Model {
	return pixel.MonoModel
}

func (s *Surface) At(x, y int) color.Color {
	return s.plane.At(x, y)
}

// Set is the image/draw.Image form of SetPixel; pixels outside are ignored.
func (s *Surface) Set(x, y int, c color.Color) {
	s.plane.Set(x, y, c)
}
