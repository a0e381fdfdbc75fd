package oled

import (
	"bytes"
	"errors"
	"testing"
)

// testBus records every write; it fails the write numbered failAt (1-based).
type testBus struct {
	frames [][]byte
	addrs  []uint16
	failAt int
	closed bool
}

var errTestBus = errors.New("test: bus NACK")

func (b *testBus) Tx(addr uint16, w, r []byte) error {
	if b.failAt > 0 && len(b.frames)+1 == b.failAt {
		return errTestBus
	}
	b.frames = append(b.frames, append([]byte(nil), w...))
	b.addrs = append(b.addrs, addr)
	return nil
}

func (b *testBus) Close() error {
	b.closed = true
	return nil
}

func testSurface(t *testing.T, bus Bus) *Surface {
	t.Helper()
	s, err := New(bus, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		width   int
		height  int
		pages   int
		addr    uint16
		wantErr error
	}{
		{"nil config uses defaults", nil, 128, 64, 8, 0x3C, nil},
		{"128x64", &Config{Width: 128, Height: 64}, 128, 64, 8, 0x3C, nil},
		{"128x32 at 0x3d", &Config{Width: 128, Height: 32, Addr: 0x3D}, 128, 32, 4, 0x3D, nil},
		{"96x16", &Config{Width: 96, Height: 16}, 96, 16, 2, 0x3C, nil},
		{"height not a page multiple", &Config{Width: 128, Height: 60}, 0, 0, 0, 0, ErrGeometry},
		{"negative height", &Config{Width: 128, Height: -8}, 0, 0, 0, 0, ErrGeometry},
		{"too tall", &Config{Width: 128, Height: 72}, 0, 0, 0, 0, ErrGeometry},
		{"too wide", &Config{Width: 129, Height: 64}, 0, 0, 0, 0, ErrGeometry},
		{"negative width", &Config{Width: -1, Height: 64}, 0, 0, 0, 0, ErrGeometry},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := New(&testBus{}, test.config)
			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Fatalf("expected %v, got %v", test.wantErr, err)
				}
				if s != nil {
					t.Fatal("expected no surface on error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s.Width() != test.width || s.Height() != test.height || s.Pages() != test.pages {
				t.Errorf("expected %dx%d with %d pages, got %dx%d with %d pages",
					test.width, test.height, test.pages, s.Width(), s.Height(), s.Pages())
			}
			if s.Addr() != test.addr {
				t.Errorf("expected address %#02x, got %#02x", test.addr, s.Addr())
			}
			if v, want := len(s.Bytes()), test.pages*test.width+1; v != want {
				t.Errorf("expected buffer of %d bytes, got %d", want, v)
			}
			if v := s.Bytes()[0]; v != 0x40 {
				t.Errorf("expected data marker 0x40, got %#02x", v)
			}
			if v := s.cmd[0]; v != 0x80 {
				t.Errorf("expected command marker 0x80, got %#02x", v)
			}
			for i, b := range s.Plane() {
				if b != 0 {
					t.Fatalf("expected zeroed plane, byte %d is %#02x", i, b)
				}
			}
		})
	}

	if _, err := New(nil, nil); !errors.Is(err, ErrNoBus) {
		t.Errorf("expected ErrNoBus, got %v", err)
	}
}

func TestNewDefaultSize(t *testing.T) {
	s := testSurface(t, &testBus{})
	if s.Pages() != 8 || len(s.Bytes()) != 1025 {
		t.Errorf("expected 8 pages and 1025 bytes, got %d pages and %d bytes", s.Pages(), len(s.Bytes()))
	}
	if v := s.String(); v != "SSD1306 OLED 128x64 at 0x3c" {
		t.Errorf("unexpected string %q", v)
	}
}

func TestSetPixel(t *testing.T) {
	s := testSurface(t, &testBus{})
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			var (
				index = (y >> 3) + (x << 3) + 1
				bit   = byte(1) << uint(y&7)
				orig  = s.Bytes()[index]
			)
			if err := s.SetPixel(x, y, true); err != nil {
				t.Fatal(err)
			}
			if v := s.Bytes()[index]; v != orig|bit {
				t.Fatalf("(%d,%d): expected byte %d to be %#02x, got %#02x", x, y, index, orig|bit, v)
			}
			if !s.Pixel(x, y) {
				t.Fatalf("(%d,%d): expected pixel to be on", x, y)
			}
			if err := s.SetPixel(x, y, false); err != nil {
				t.Fatal(err)
			}
			if v := s.Bytes()[index]; v != orig {
				t.Fatalf("(%d,%d): expected byte %d restored to %#02x, got %#02x", x, y, index, orig, v)
			}
		}
	}
	if v := s.Bytes()[0]; v != 0x40 {
		t.Errorf("expected data marker to survive, got %#02x", v)
	}
}

func TestSetPixelBounds(t *testing.T) {
	s := testSurface(t, &testBus{})
	s.Fill(true)
	before := append([]byte(nil), s.Bytes()...)

	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {128, 0}, {0, 64}, {128, 64}, {-300, 9000}} {
		err := s.SetPixel(pt[0], pt[1], false)
		if !errors.Is(err, ErrBounds) {
			t.Errorf("(%d,%d): expected ErrBounds, got %v", pt[0], pt[1], err)
		}
		if s.Pixel(pt[0], pt[1]) {
			t.Errorf("(%d,%d): expected pixel outside to read as off", pt[0], pt[1])
		}
	}
	if !bytes.Equal(before, s.Bytes()) {
		t.Error("expected rejected writes to leave the buffer unchanged")
	}
}

func TestFill(t *testing.T) {
	s := testSurface(t, &testBus{})
	fresh := append([]byte(nil), s.Bytes()...)

	s.Fill(true)
	if v := s.Bytes()[0]; v != 0x40 {
		t.Errorf("expected data marker to survive, got %#02x", v)
	}
	for i, b := range s.Plane() {
		if b != 0xFF {
			t.Fatalf("expected byte %d to be 0xff, got %#02x", i, b)
		}
	}

	s.Fill(false)
	if !bytes.Equal(fresh, s.Bytes()) {
		t.Error("expected fill(false) to restore the initial buffer")
	}

	s.Fill(true)
	s.Clear()
	if !bytes.Equal(fresh, s.Bytes()) {
		t.Error("expected clear to restore the initial buffer")
	}
}

func TestImage(t *testing.T) {
	s := testSurface(t, &testBus{})
	if v := s.Bounds(); v.Dx() != 128 || v.Dy() != 64 {
		t.Errorf("unexpected bounds %s", v)
	}
	s.Set(3, 4, s.ColorModel().Convert(whiteColor))
	if !s.Pixel(3, 4) {
		t.Error("expected Set to light the pixel")
	}
	if r, _, _, _ := s.At(3, 4).RGBA(); r != 0xffff {
		t.Errorf("expected lit pixel to read white, got red %#04x", r)
	}
	s.Set(500, 4, whiteColor)
}
