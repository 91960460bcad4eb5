//go:build rp2040 || rp2350

package ledring

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// NewStrip binds the animator to a ws2812 chain on the given pin and
// configures the pin as an output.
func NewStrip(pin machine.Pin) Strip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d := ws2812.NewWS2812(pin)
	return &d
}
