//go:build !linux

package button

// Button is a pulled-up input line, pressed when pulled to ground.
type Button struct{}

func Open(_ string, _ int, _ *Debouncer, _ func()) (*Button, error) {
	return nil, ErrNotSupported
}

func (b *Button) Close() error {
	return nil
}
