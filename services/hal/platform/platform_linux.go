// services/hal/platform/platform_linux.go
//go:build linux && !(rp2040 || rp2350)

// Package platform supplies concrete pin capabilities per target: memory
// mapped Raspberry Pi GPIO on Linux hosts, machine pins on rp2 MCUs.
package platform

import (
	"time"

	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio/v4"

	"growkit-go/drivers/dht"
	"growkit-go/services/hal"
)

// Open maps the GPIO register block. Pair with Close.
func Open() error {
	if err := rpio.Open(); err != nil {
		return errors.Wrap(err, "open gpio")
	}
	return nil
}

func Close() error { return rpio.Close() }

// ---- dht transport ----

// Line is a single-wire data line on a BCM pin.
type Line struct {
	pin rpio.Pin
}

var _ dht.PinTransport = (*Line)(nil)

func NewLine(bcm int) *Line {
	return &Line{pin: rpio.Pin(bcm)}
}

func (l *Line) ConfigureInput(pull dht.Pull) {
	l.pin.Input()
	switch pull {
	case dht.PullUp:
		l.pin.PullUp()
	case dht.PullDown:
		l.pin.PullDown()
	default:
		l.pin.PullOff()
	}
}

func (l *Line) ConfigureOutput(initial bool) {
	l.pin.Output()
	l.Set(initial)
}

func (l *Line) Set(level bool) {
	if level {
		l.pin.High()
	} else {
		l.pin.Low()
	}
}

func (l *Line) Get() bool { return l.pin.Read() == rpio.High }

// DelayMicroseconds spins for sub-millisecond delays: the scheduler's sleep
// granularity is far too coarse for protocol timing.
func (l *Line) DelayMicroseconds(n int) {
	if n <= 0 {
		return
	}
	d := time.Duration(n) * time.Microsecond
	if d >= time.Millisecond {
		time.Sleep(d)
		return
	}
	start := time.Now()
	for time.Since(start) < d {
	}
}

func (l *Line) DelayMilliseconds(n int) {
	time.Sleep(time.Duration(n) * time.Millisecond)
}

// ---- hal pins ----

// GPIO adapts a BCM pin to hal.GPIOPin.
type GPIO struct {
	pin rpio.Pin
	n   int
}

var _ hal.GPIOPin = (*GPIO)(nil)

func NewGPIO(bcm int) *GPIO {
	return &GPIO{pin: rpio.Pin(bcm), n: bcm}
}

func (g *GPIO) ConfigureInput(pull hal.Pull) error {
	g.pin.Input()
	switch pull {
	case hal.PullUp:
		g.pin.PullUp()
	case hal.PullDown:
		g.pin.PullDown()
	default:
		g.pin.PullOff()
	}
	return nil
}

func (g *GPIO) ConfigureOutput(initial bool) error {
	g.pin.Output()
	g.Set(initial)
	return nil
}

func (g *GPIO) Set(level bool) {
	if level {
		g.pin.High()
	} else {
		g.pin.Low()
	}
}

func (g *GPIO) Get() bool   { return g.pin.Read() == rpio.High }
func (g *GPIO) Number() int { return g.n }
