//go:build rp2040 || rp2350

// pico-growkit is the MCU firmware for the garden node: it reads the
// single-wire temperature/humidity sensor, the analog light and soil probes
// and the motion input, switches the pump motor on motion, and streams one
// telemetry line per cycle over UART0. The pixel ring shows read status.
package main

import (
	"context"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"growkit-go/drivers/dht"
	"growkit-go/drivers/ledring"
	"growkit-go/errcode"
	"growkit-go/services/hal"
	"growkit-go/services/hal/platform"
	"growkit-go/types"
)

// Board wiring.
const (
	pinSensor = machine.GP4
	pinMotion = machine.GP2
	pinMotor  = machine.GP9
	pinLED    = machine.GP13
	pinRing   = machine.GP16
	pinLight  = machine.GP26
	pinSoil   = machine.GP27

	ringPixels = 12
)

// tiny helper (no fmt)
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	sign := ""
	if i < 0 {
		sign = "-"
		i = -i
	}
	var buf [32]byte
	b := len(buf)
	for i > 0 {
		b--
		buf[b] = byte('0' + (i % 10))
		i /= 10
	}
	return sign + string(buf[b:])
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	_ = uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	machine.InitADC()

	dev := dht.New(platform.NewLine(pinSensor))
	dev.Configure()

	motion := hal.NewGPIOAdaptor("pir0", platform.NewGPIO(pinMotion), hal.GPIOParams{Role: hal.RoleMotion, Pull: hal.PullDown})
	motor := hal.NewGPIOAdaptor("pump0", platform.NewGPIO(pinMotor), hal.GPIOParams{Role: hal.RoleMotor})
	led := hal.NewGPIOAdaptor("led0", platform.NewGPIO(pinLED), hal.GPIOParams{Role: hal.RoleLED})
	light := hal.NewAnalogAdaptor("light0", platform.NewADC(pinLight), hal.AnalogParams{Role: hal.RoleLight})
	soil := hal.NewAnalogAdaptor("soil0", platform.NewADC(pinSoil), hal.AnalogParams{Role: hal.RoleMoisture, RawLo: 52000, RawHi: 18000})

	ring := ledring.New(ringPixels)
	stop := make(chan struct{})
	go ledring.Run(ring, ledring.NewStrip(pinRing), func() { time.Sleep(80 * time.Millisecond) }, stop)

	ctx := context.Background()
	for {
		line := reportLine(ctx, &dev, ring, motion, motor, light, soil)
		println(line)
		_, _ = uartx.UART0.Write([]byte(line + "\r\n"))

		// Heartbeat.
		_, _ = led.Control(string(types.KindLED), "toggle", nil)

		// Sensor settle period between protocol rounds.
		time.Sleep(2 * time.Second)
	}
}

func reportLine(ctx context.Context, dev *dht.Device, ring *ledring.Animator, motion, motor, light, soil hal.Adaptor) string {
	line := "env"

	f, err := dev.Read()
	if err != nil {
		ring.SetColor(ledring.ColorError)
		line += " err=" + string(errcode.MapDriverErr(err))
	} else {
		ring.SetColor(ledring.ColorOK)
		line += " t_centi=" + itoa(int(f.CentiCelsius())) + " rh_x100=" + itoa(int(f.CentiRelHumidity()))
	}

	if s, err := light.Collect(ctx); err == nil {
		line += " light_x100=" + itoa(int(s[0].Payload.(types.LightValue).PctX100))
	}
	if s, err := soil.Collect(ctx); err == nil {
		line += " soil_x100=" + itoa(int(s[0].Payload.(types.MoistureValue).PctX100))
	}

	detected := false
	if s, err := motion.Collect(ctx); err == nil {
		detected = s[0].Payload.(types.MotionValue).Detected
	}
	// Motion gates the pump.
	_, _ = motor.Control(string(types.KindMotor), "set", map[string]any{"level": detected})
	if detected {
		line += " motion=1"
	} else {
		line += " motion=0"
	}
	return line
}
