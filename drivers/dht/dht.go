// Package dht reads DHT11-class temperature/humidity sensors over their
// single-wire protocol, bit-banged through an injected PinTransport:
//
//	d := dht.New(pin)
//	d.Configure()
//	t, err := d.ReadTemperature(dht.Celsius)
//
// Each read is one blocking protocol round: start condition, acknowledge,
// 40 sampled bits, checksum. Nothing is cached between reads; a failed read
// leaves the pin and the device reusable.
//
// The sampling window needs microsecond timing. Run reads from a context
// that will not be preempted mid-protocol, or bit decisions will be
// corrupted by jitter (surfacing as checksum errors).
package dht

import "errors"

// Errors returned by the driver.
var (
	// ErrNoResponse: the sensor never pulled the line low in the
	// acknowledge window. Disconnected, or still in its power-on settle.
	ErrNoResponse = errors.New("dht: no response")
	// ErrChecksum: 40 bits arrived but the integrity sum failed. Line noise
	// or timing drift. Matched by errors.Is against *ChecksumError.
	ErrChecksum = errors.New("dht: checksum mismatch")
	// ErrTimeout: a bounded wait expired mid-protocol. Distinct from
	// ErrNoResponse: the sensor answered and then stalled.
	ErrTimeout = errors.New("dht: timeout")
)

// Config controls protocol timing bounds. All fields are optional.
type Config struct {
	// StartLowMs is the start-condition low hold. Default 18 (datasheet
	// minimum for waking the sensor).
	StartLowMs int
	// AckBudgetMicros bounds each acknowledge phase wait. The nominal phase
	// is 80 us; default budget 120.
	AckBudgetMicros int
	// BitBudgetMicros bounds each per-bit edge wait. Default 150, enough
	// for the ~50 us lead-in plus a long one-pulse with margin.
	BitBudgetMicros int
}

// Device reads one sensor on one pin. Zero state is retained across reads;
// every Read re-runs the full handshake.
type Device struct {
	tr  PinTransport
	cfg Config
}

// New creates a device on the given transport. It does not touch the pin.
func New(tr PinTransport) Device {
	return Device{tr: tr}
}

// Configure applies optional config, defaulting unset fields. It may be
// called with no arguments.
func (d *Device) Configure(cfgs ...Config) {
	var c Config
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.StartLowMs <= 0 {
		c.StartLowMs = 18
	}
	if c.AckBudgetMicros <= 0 {
		c.AckBudgetMicros = 120
	}
	if c.BitBudgetMicros <= 0 {
		c.BitBudgetMicros = 150
	}
	d.cfg = c
}

// Read performs one full protocol round and returns the validated frame.
func (d *Device) Read() (Frame, error) {
	if d.cfg.StartLowMs == 0 {
		d.Configure()
	}
	if err := d.handshake(); err != nil {
		return Frame{}, err
	}
	var bits RawBitFrame
	if err := d.sampleBits(&bits); err != nil {
		return Frame{}, err
	}
	return decodeFrame(&bits)
}

// ReadTemperature performs one read and converts to the requested scale.
func (d *Device) ReadTemperature(scale TemperatureScale) (float32, error) {
	f, err := d.Read()
	if err != nil {
		return 0, err
	}
	return f.Temperature(scale), nil
}

// ReadHumidity performs one read and returns relative humidity in percent.
func (d *Device) ReadHumidity() (float32, error) {
	f, err := d.Read()
	if err != nil {
		return 0, err
	}
	return f.RelHumidity(), nil
}
