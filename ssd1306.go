package oled

import (
	"fmt"
	"image"
	"io"
	"log"

	"periph.io/x/conn/v3/display"

	"github.com/BeatGlow/oled/draw"
)

// initSequence is the power-up configuration, one byte per command frame.
func (s *Surface) initSequence() []byte {
	return []byte{
		setDisplayOff,
		setMemoryMode, memoryModeVertical,
		setStartLine,
		setSegmentRemap | segmentRemapFlip,
		setMultiplexRatio, byte(s.height - 1),
		setComScanDec,
		setDisplayOffset, 0x00,
		setComPins, comPinsAlternative,
		setDisplayClockDiv, clockDivDefault,
		setPrecharge, prechargeInternal,
		setVComDeselect, vcomDeselect083,
		setContrast, contrastMax,
		setDisplayAllOnResume,
		setNormalDisplay,
		setChargePump, chargePumpEnable,
		setDisplayOn,
	}
}

// Command sends each byte as its own command frame, stopping at the first
// transport error.
func (s *Surface) Command(cmnds ...byte) error {
	for _, cmnd := range cmnds {
		s.cmd[1] = cmnd
		if err := s.bus.Tx(s.addr, s.cmd[:], nil); err != nil {
			return fmt.Errorf("oled: command %#02x: %w", cmnd, err)
		}
	}
	return nil
}

// Configure sends the controller initialization sequence and turns the display
// on. A failure leaves the controller in an unknown state; run Configure again
// before pushing frames.
func (s *Surface) Configure() error {
	if debug {
		log.Printf("oled: configure %s", s)
	}
	if err := s.Command(s.initSequence()...); err != nil {
		return err
	}
	s.halted = false
	return nil
}

// SendFrame selects the full column and page range and writes the whole pixel
// plane in one data frame.
func (s *Surface) SendFrame() error {
	if err := s.Command(
		setColumnAddr, 0, byte(s.width-1),
		setPageAddr, 0, byte(s.pages-1),
	); err != nil {
		return err
	}
	if debug {
		log.Printf("oled: push %d bytes to %#02x", len(s.buf), s.addr)
	}
	if err := s.bus.Tx(s.addr, s.buf, nil); err != nil {
		return fmt.Errorf("oled: data frame: %w", err)
	}
	return nil
}

// Show turns the display panel on or off; the display RAM is kept.
func (s *Surface) Show(show bool) error {
	if show {
		if err := s.Command(setDisplayOn); err != nil {
			return err
		}
		s.halted = false
		return nil
	}
	return s.Command(setDisplayOff)
}

// SetContrast adjusts the contrast level.
func (s *Surface) SetContrast(level uint8) error {
	return s.Command(setContrast, level)
}

// Invert toggles inverse video.
func (s *Surface) Invert(invert bool) error {
	if invert {
		return s.Command(setInvertDisplay)
	}
	return s.Command(setNormalDisplay)
}

// Halt turns the display off. It implements conn.Resource.
func (s *Surface) Halt() error {
	if s.halted {
		return nil
	}
	if err := s.Show(false); err != nil {
		return err
	}
	s.halted = true
	return nil
}

// Close halts the display and closes the bus when it can be closed.
func (s *Surface) Close() error {
	err := s.Halt()
	if c, ok := s.bus.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Draw converts src to monochrome into the area r of the surface, aligning
// r.Min with sp in src, and pushes the frame. It implements display.Drawer.
func (s *Surface) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(s, r, src, sp, draw.Src)
	return s.SendFrame()
}

// Interface checks.
var (
	_ display.Drawer = (*Surface)(nil)
	_ draw.Plotter   = (*Surface)(nil)
	_ draw.Image     = (*Surface)(nil)
)
