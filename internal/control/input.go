package control

import (
	"image"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
)

// Event is an input delivered to the loop.
type Event uint8

// Events.
const (
	// ToggleLEDs enables or disables the joystick driven LEDs.
	ToggleLEDs Event = iota + 1

	// NextBorder switches to the next border style and toggles the green LED.
	NextBorder
)

func (e Event) String() string {
	switch e {
	case ToggleLEDs:
		return "toggle-leds"
	case NextBorder:
		return "next-border"
	default:
		return "unknown"
	}
}

// Joystick returns the raw 12-bit position of both axes.
type Joystick interface {
	Read() (vrx, vry uint16, err error)
}

// Sampler is an ADC channel; analog.PinADC satisfies it.
type Sampler interface {
	Read() (analog.Sample, error)
}

// AnalogJoystick reads the two axes from two ADC channels.
type AnalogJoystick struct {
	X, Y Sampler
}

func (j AnalogJoystick) Read() (vrx, vry uint16, err error) {
	var x, y analog.Sample
	if y, err = j.Y.Read(); err != nil {
		return
	}
	if x, err = j.X.Read(); err != nil {
		return
	}
	return adcRaw(x.Raw), adcRaw(y.Raw), nil
}

const (
	adcMax    = 4095
	adcCenter = 2047
)

func adcRaw(raw int32) uint16 {
	switch {
	case raw < 0:
		return 0
	case raw > adcMax:
		return adcMax
	default:
		return uint16(raw)
	}
}

// Cursor limits, in pixels from the top left corner of the display.
const (
	cursorSize    = 8
	cursorMinTop  = 8
	cursorMinLeft = 12
)

// CursorPosition maps a joystick position to the top left corner of the cursor
// on a display of the given size: the Y axis moves it down the rows (inverted),
// the X axis across the columns. The result is kept on the display.
func CursorPosition(vrx, vry uint16, size image.Point) image.Point {
	var (
		top  = (adcMax - int(vry)) / 64
		left = int(vrx) / 32
	)
	return image.Point{
		X: clamp(left, cursorMinLeft, size.X-cursorSize),
		Y: clamp(top, cursorMinTop, size.Y-cursorSize),
	}
}

// CenteredCursor is the cursor position without a joystick.
func CenteredCursor(size image.Point) image.Point {
	return image.Pt((size.X-cursorSize)/2, (size.Y-cursorSize)/2)
}

// LED brightness levels, on a 0..4095 scale, away from the joystick dead zone.
const (
	redDeadLow   = 2120
	redDeadHigh  = 2400
	blueDeadLow  = 1850
	blueDeadHigh = 2100
)

// LEDLevels returns the red and blue LED levels for a joystick position; both
// are zero while the stick rests in the dead zone of its axis.
func LEDLevels(vrx, vry uint16) (red, blue uint16) {
	if vrx >= redDeadHigh || vrx <= redDeadLow {
		red = level(vrx)
	}
	if vry >= blueDeadHigh || vry <= blueDeadLow {
		blue = level(vry)
	}
	return
}

func level(v uint16) uint16 {
	d := int(v) - adcCenter
	if d < 0 {
		d = -d
	}
	return uint16(min(d*2, adcMax))
}

// Duty converts a 0..4095 level to a PWM duty cycle.
func Duty(level uint16) gpio.Duty {
	l := int64(min(level, adcMax))
	return gpio.Duty(l * int64(gpio.DutyMax) / adcMax)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
