package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/image/bmp"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/oled"
	"github.com/BeatGlow/oled/internal/button"
	"github.com/BeatGlow/oled/internal/control"
	"github.com/BeatGlow/oled/internal/iio"
)

func main() {
	widthFlag := flag.Int("width", oled.DefaultWidth, "Display width")
	heightFlag := flag.Int("height", oled.DefaultHeight, "Display height")
	i2cDeviceFlag := flag.Int("i2c-dev", oled.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", oled.DefaultAddr, "I²C device address")
	i2cSpeedFlag := flag.Int64("i2c-khz", int64(oled.DefaultI2CConfig.Speed/physic.KiloHertz), "I²C bus speed in kHz, 0 keeps the bus default")
	resetPinFlag := flag.String("reset", "", "Reset GPIO pin")
	chipFlag := flag.String("chip", "gpiochip0", "GPIO chip the buttons are on")
	borderButtonFlag := flag.Int("border-button", 22, "Line offset of the border style button, -1 to disable")
	ledButtonFlag := flag.Int("led-button", 5, "Line offset of the LED toggle button, -1 to disable")
	redPinFlag := flag.String("red", "", "Red LED PWM GPIO pin")
	bluePinFlag := flag.String("blue", "", "Blue LED PWM GPIO pin")
	greenPinFlag := flag.String("green", "", "Green LED GPIO pin")
	vrxFlag := flag.String("vrx", "", "IIO raw value file of the joystick X axis")
	vryFlag := flag.String("vry", "", "IIO raw value file of the joystick Y axis")
	periodFlag := flag.Duration("period", control.DefaultPeriod, "Frame period")
	snapshotFlag := flag.String("snapshot", "", "Write the last frame to this BMP file on exit")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	bus, err := oled.OpenI2C(&oled.I2CConfig{
		Device: *i2cDeviceFlag,
		Speed:  physic.Frequency(*i2cSpeedFlag) * physic.KiloHertz,
		Reset:  pin(*resetPinFlag),
	})
	if err != nil {
		fatal(err)
	}
	log.Printf("using connection: %s", bus)

	s, err := oled.New(bus, &oled.Config{
		Width:  *widthFlag,
		Height: *heightFlag,
		Addr:   uint16(*i2cAddrFlag),
	})
	if err != nil {
		_ = bus.Close()
		fatal(err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()
	if err = s.Configure(); err != nil {
		fatal(err)
	}
	log.Printf("using display: %s", s)

	config := control.Config{
		Red:    pin(*redPinFlag),
		Blue:   pin(*bluePinFlag),
		Green:  pin(*greenPinFlag),
		Period: *periodFlag,
	}
	if *vrxFlag != "" && *vryFlag != "" {
		var j control.AnalogJoystick
		if j.X, err = iio.Open(*vrxFlag); err != nil {
			fatal(err)
		}
		if j.Y, err = iio.Open(*vryFlag); err != nil {
			fatal(err)
		}
		config.Joystick = j
		log.Printf("using joystick: %s, %s", *vrxFlag, *vryFlag)
	}

	var (
		events   = make(chan control.Event, 8)
		debounce = button.NewDebouncer(button.DefaultDebounce)
	)
	for _, b := range []struct {
		offset int
		event  control.Event
	}{
		{*borderButtonFlag, control.NextBorder},
		{*ledButtonFlag, control.ToggleLEDs},
	} {
		if b.offset < 0 {
			continue
		}
		ev := b.event
		btn, err := button.Open(*chipFlag, b.offset, debounce, func() {
			select {
			case events <- ev:
			default:
				log.Printf("dropped %s, loop is busy", ev)
			}
		})
		if errors.Is(err, button.ErrNotSupported) {
			log.Printf("no %s button: %v", ev, err)
			continue
		} else if err != nil {
			fatal(err)
		}
		defer btn.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("hit control-c to stop...")
	loop := control.New(s, config)
	if err = loop.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("loop stopped: %v", err)
	}

	if *snapshotFlag != "" {
		if err = snapshot(*snapshotFlag, s); err != nil {
			log.Printf("snapshot: %v", err)
		}
	}
	log.Println("shutting down...")
}

func pin(name string) gpio.PinIO {
	if name == "" {
		return nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		fatal(fmt.Errorf("unknown GPIO pin %q", name))
	}
	return p
}

func snapshot(name string, s *oled.Surface) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = bmp.Encode(f, s); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
