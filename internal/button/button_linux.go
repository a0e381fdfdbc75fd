//go:build linux

package button

import (
	"fmt"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

// Button is a pulled-up input line, pressed when pulled to ground.
type Button struct {
	line *gpiocdev.Line
}

// Open requests line offset on chip (e.g. "gpiochip0") and calls pressed, from
// the line's event goroutine, on every falling edge the debouncer accepts.
func Open(chip string, offset int, d *Debouncer, pressed func()) (*Button, error) {
	line, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.WithConsumer("oled-demo"),
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithFallingEdge,
		gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
			if evt.Type != gpiocdev.LineEventFallingEdge {
				return
			}
			if d == nil || d.Allow(time.Now()) {
				pressed()
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("button: %s line %d: %w", chip, offset, err)
	}
	return &Button{line: line}, nil
}

// Close releases the line.
func (b *Button) Close() error {
	return b.line.Close()
}
