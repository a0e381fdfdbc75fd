// Package control runs the interactive demo on a display: a decorated frame
// whose style is cycled by a button, and a cursor moved by a joystick that also
// drives two PWM LEDs.
package control

import (
	"context"
	"errors"
	"image"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/oled"
	"github.com/BeatGlow/oled/draw"
)

const (
	// DefaultPeriod is the frame period.
	DefaultPeriod = 40 * time.Millisecond

	// frameMargin is the gap between the display edge and the border.
	frameMargin = 3

	ledFrequency = 1 * physic.KiloHertz
)

// Config of the loop. Any pin may be nil.
type Config struct {
	// Joystick moves the cursor and drives the LEDs; without one the cursor
	// stays centered and the LEDs stay dark.
	Joystick Joystick

	// Red and Blue are PWM capable LED pins, Green is a plain output.
	Red, Blue, Green gpio.PinOut

	// Period between frames, DefaultPeriod when zero.
	Period time.Duration
}

// Loop owns a surface and redraws it every period.
type Loop struct {
	surface  *oled.Surface
	joystick Joystick
	red      gpio.PinOut
	blue     gpio.PinOut
	green    gpio.PinOut
	period   time.Duration

	border draw.Border
	ledsOn bool
	greenL gpio.Level
	cursor image.Point
}

// New prepares a loop drawing on s; s must already be configured.
func New(s *oled.Surface, config Config) *Loop {
	if config.Period <= 0 {
		config.Period = DefaultPeriod
	}
	l := &Loop{
		surface:  s,
		joystick: config.Joystick,
		red:      config.Red,
		blue:     config.Blue,
		green:    config.Green,
		period:   config.Period,
		ledsOn:   true,
	}
	l.cursor = CenteredCursor(l.size())
	return l
}

func (l *Loop) size() image.Point {
	return image.Pt(l.surface.Width(), l.surface.Height())
}

// Border is the current border style.
func (l *Loop) Border() draw.Border { return l.border }

// LEDsOn reports whether the joystick LEDs are enabled.
func (l *Loop) LEDsOn() bool { return l.ledsOn }

// Cursor is the current top left corner of the cursor.
func (l *Loop) Cursor() image.Point { return l.cursor }

// Handle applies one input event.
func (l *Loop) Handle(ev Event) error {
	switch ev {
	case ToggleLEDs:
		l.ledsOn = !l.ledsOn
	case NextBorder:
		l.border = l.border.Next()
		l.greenL = !l.greenL
		if l.green != nil {
			return l.green.Out(l.greenL)
		}
	}
	return nil
}

// Step samples the joystick, updates the LEDs and draws and sends one frame.
func (l *Loop) Step() error {
	var vrx, vry uint16 = adcCenter, adcCenter
	if l.joystick != nil {
		var err error
		if vrx, vry, err = l.joystick.Read(); err != nil {
			return err
		}
		l.cursor = CursorPosition(vrx, vry, l.size())
	}

	if err := l.updateLEDs(vrx, vry); err != nil {
		return err
	}

	if err := l.Render(); err != nil {
		return err
	}
	return l.surface.SendFrame()
}

// Render draws the current state into the surface without sending it.
func (l *Loop) Render() error {
	var (
		s = l.surface
		w = s.Width() - 2*frameMargin
		h = s.Height() - 2*frameMargin
	)
	s.Fill(false)
	err := errors.Join(
		l.border.Draw(s, frameMargin, frameMargin, w, h, true),
		draw.Rectangle(s, l.cursor.Y, l.cursor.X, cursorSize, cursorSize, true),
	)
	if errors.Is(err, oled.ErrBounds) {
		// Clipped shapes are fine.
		return nil
	}
	return err
}

func (l *Loop) updateLEDs(vrx, vry uint16) error {
	var red, blue uint16
	if l.ledsOn && l.joystick != nil {
		red, blue = LEDLevels(vrx, vry)
	}
	if l.red != nil {
		if err := l.red.PWM(Duty(red), ledFrequency); err != nil {
			return err
		}
	}
	if l.blue != nil {
		if err := l.blue.PWM(Duty(blue), ledFrequency); err != nil {
			return err
		}
	}
	return nil
}

// Run handles events and steps the loop once per period until ctx is done.
// Events are drained once per frame. A failed frame stops the loop.
func (l *Loop) Run(ctx context.Context, events <-chan Event) error {
	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

	drain:
		for {
			select {
			case ev := <-events:
				log.Printf("control: %s", ev)
				if err := l.Handle(ev); err != nil {
					return err
				}
			default:
				break drain
			}
		}

		if err := l.Step(); err != nil {
			return err
		}
	}
}
