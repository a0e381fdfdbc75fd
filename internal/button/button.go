// Package button delivers debounced button presses from GPIO lines.
package button

import (
	"errors"
	"sync"
	"time"
)

var ErrNotSupported = errors.New("button: not supported")

// DefaultDebounce is the quiet time after a press during which further
// presses, on any button sharing the Debouncer, are ignored.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer accepts at most one press per period. It is safe for concurrent use,
// so several buttons can share one.
type Debouncer struct {
	mu     sync.Mutex
	period time.Duration
	next   time.Time
}

// NewDebouncer returns a Debouncer that accepts a press right away.
func NewDebouncer(period time.Duration) *Debouncer {
	return &Debouncer{period: period}
}

// Allow reports whether a press at now is accepted, and if so starts a new quiet
// period.
func (d *Debouncer) Allow(now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if now.Before(d.next) {
		return false
	}
	d.next = now.Add(d.period)
	return true
}
