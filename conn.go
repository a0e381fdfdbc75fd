package oled

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/oled/conn"
)

// Bus performs blocking writes to an addressed peripheral. Either all of w is
// accepted or an error is returned.
//
// It is satisfied by periph.io's i2c.Bus.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Speed is the bus clock; zero keeps the bus default.
	Speed physic.Frequency

	// Reset pin, optional. It is pulsed low once after the bus is opened.
	Reset gpio.PinOut
}

var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Speed:  400 * physic.KiloHertz,
}

const resetPulse = 10 * time.Millisecond

// OpenI2C opens the I²C bus a controller is attached to.
func OpenI2C(config *I2CConfig) (i2c.BusCloser, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	c, err := conn.OpenI2C(config.Device, config.Speed)
	if err != nil {
		return nil, err
	}

	if config.Reset != nil && config.Reset != gpio.INVALID {
		if err = reset(config.Reset); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	return c, nil
}

func reset(pin gpio.PinOut) error {
	for _, level := range []gpio.Level{gpio.High, gpio.Low, gpio.High} {
		if err := pin.Out(level); err != nil {
			return fmt.Errorf("oled: reset pin %s: %w", pin, err)
		}
		time.Sleep(resetPulse)
	}
	return nil
}
