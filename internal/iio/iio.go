// Package iio reads ADC channels exposed by the Linux Industrial I/O subsystem
// through sysfs, e.g. /sys/bus/iio/devices/iio:device0/in_voltage0_raw.
package iio

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/physic"
)

// Channel is one ADC input.
type Channel struct {
	path  string
	scale float64 // millivolts per count, 0 when unknown
}

// Open checks that the raw value file at path can be read. When a sibling
// _scale file exists its value is used to convert samples to volts.
func Open(path string) (*Channel, error) {
	c := &Channel{path: path}
	if _, err := c.readRaw(); err != nil {
		return nil, err
	}

	if base, ok := strings.CutSuffix(path, "_raw"); ok {
		if b, err := os.ReadFile(base + "_scale"); err == nil {
			if c.scale, err = strconv.ParseFloat(strings.TrimSpace(string(b)), 64); err != nil {
				return nil, fmt.Errorf("iio: %s_scale: %w", base, err)
			}
		}
	}
	return c, nil
}

func (c *Channel) String() string {
	return c.path
}

// Read takes one sample.
func (c *Channel) Read() (analog.Sample, error) {
	raw, err := c.readRaw()
	if err != nil {
		return analog.Sample{}, err
	}
	return analog.Sample{
		V:   physic.ElectricPotential(float64(raw) * c.scale * float64(physic.MilliVolt)),
		Raw: raw,
	}, nil
}

func (c *Channel) readRaw() (int32, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		return 0, fmt.Errorf("iio: %w", err)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(string(b)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("iio: %s: %w", c.path, err)
	}
	return int32(v), nil
}
