package iio

import (
	"os"
	"path/filepath"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func writeFile(t *testing.T, name, value string) string {
	t.Helper()
	if err := os.WriteFile(name, []byte(value), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestChannel(t *testing.T) {
	dir := t.TempDir()
	raw := writeFile(t, filepath.Join(dir, "in_voltage0_raw"), "2047\n")

	c, err := Open(raw)
	if err != nil {
		t.Fatal(err)
	}
	s, err := c.Read()
	if err != nil {
		t.Fatal(err)
	}
	if s.Raw != 2047 || s.V != 0 {
		t.Errorf("expected raw 2047 without voltage, got %d and %s", s.Raw, s.V)
	}

	writeFile(t, raw, "1000\n")
	writeFile(t, filepath.Join(dir, "in_voltage0_scale"), "0.5\n")
	if c, err = Open(raw); err != nil {
		t.Fatal(err)
	}
	if s, err = c.Read(); err != nil {
		t.Fatal(err)
	}
	if s.Raw != 1000 || s.V != 500*physic.MilliVolt {
		t.Errorf("expected raw 1000 at 500mV, got %d and %s", s.Raw, s.V)
	}
	if c.String() != raw {
		t.Errorf("expected name %q, got %q", raw, c.String())
	}
}

func TestChannelErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Open(filepath.Join(dir, "missing_raw")); err == nil {
		t.Error("expected error for a missing file")
	}
	garbage := writeFile(t, filepath.Join(dir, "in_voltage1_raw"), "abc")
	if _, err := Open(garbage); err == nil {
		t.Error("expected error for a malformed value")
	}

	raw := writeFile(t, filepath.Join(dir, "in_voltage2_raw"), "12")
	writeFile(t, filepath.Join(dir, "in_voltage2_scale"), "x")
	if _, err := Open(raw); err == nil {
		t.Error("expected error for a malformed scale")
	}

	writeFile(t, raw, "12")
	if err := os.Remove(filepath.Join(dir, "in_voltage2_scale")); err != nil {
		t.Fatal(err)
	}
	c, err := Open(raw)
	if err != nil {
		t.Fatal(err)
	}
	if err = os.Remove(raw); err != nil {
		t.Fatal(err)
	}
	if _, err = c.Read(); err == nil {
		t.Error("expected error once the channel disappears")
	}
}
