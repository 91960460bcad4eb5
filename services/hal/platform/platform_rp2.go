// services/hal/platform/platform_rp2.go
//go:build rp2040 || rp2350

package platform

import (
	"machine"
	"time"

	"growkit-go/drivers/dht"
	"growkit-go/services/hal"
)

// ---- dht transport ----

// Line is a single-wire data line on a machine pin.
type Line struct {
	pin machine.Pin
}

var _ dht.PinTransport = (*Line)(nil)

func NewLine(pin machine.Pin) *Line {
	return &Line{pin: pin}
}

func (l *Line) ConfigureInput(pull dht.Pull) {
	mode := machine.PinInput
	switch pull {
	case dht.PullUp:
		mode = machine.PinInputPullup
	case dht.PullDown:
		mode = machine.PinInputPulldown
	}
	l.pin.Configure(machine.PinConfig{Mode: mode})
}

func (l *Line) ConfigureOutput(initial bool) {
	l.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	l.pin.Set(initial)
}

func (l *Line) Set(level bool) { l.pin.Set(level) }
func (l *Line) Get() bool      { return l.pin.Get() }

func (l *Line) DelayMicroseconds(n int) {
	if n > 0 {
		time.Sleep(time.Duration(n) * time.Microsecond)
	}
}

func (l *Line) DelayMilliseconds(n int) {
	time.Sleep(time.Duration(n) * time.Millisecond)
}

// ---- hal pins ----

type GPIO struct {
	pin machine.Pin
	n   int
}

var _ hal.GPIOPin = (*GPIO)(nil)

func NewGPIO(pin machine.Pin) *GPIO {
	return &GPIO{pin: pin, n: int(pin)}
}

func (g *GPIO) ConfigureInput(pull hal.Pull) error {
	mode := machine.PinInput
	switch pull {
	case hal.PullUp:
		mode = machine.PinInputPullup
	case hal.PullDown:
		mode = machine.PinInputPulldown
	}
	g.pin.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (g *GPIO) ConfigureOutput(initial bool) error {
	g.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	g.pin.Set(initial)
	return nil
}

func (g *GPIO) Set(level bool) { g.pin.Set(level) }
func (g *GPIO) Get() bool      { return g.pin.Get() }
func (g *GPIO) Number() int    { return g.n }

// ---- ADC ----

type ADC struct {
	adc machine.ADC
	n   int
}

var _ hal.ADCPin = (*ADC)(nil)

// NewADC assumes machine.InitADC has been called once at boot.
func NewADC(pin machine.Pin) *ADC {
	a := machine.ADC{Pin: pin}
	a.Configure(machine.ADCConfig{})
	return &ADC{adc: a, n: int(pin)}
}

func (a *ADC) ReadRaw() uint16 { return a.adc.Get() }
func (a *ADC) Number() int     { return a.n }
