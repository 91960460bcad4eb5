package dht

import "errors"

// Legacy sentinel surface, kept for callers ported from the original
// single-float API. New code should use Device's error-returning methods;
// the sentinels are ambiguous with legitimate values on other sensors.

// Sentinels returned by the legacy wrappers.
const (
	// SentinelNoResponse is returned when the sensor never acknowledged.
	// Mid-protocol timeouts also map here: the legacy surface predates the
	// distinction and has no third value.
	SentinelNoResponse float32 = -1
	// SentinelChecksum is returned when the bits arrived but failed the
	// integrity sum.
	SentinelChecksum float32 = -999
)

// ReadTemperature reads once and returns the temperature in the requested
// scale, or SentinelNoResponse / SentinelChecksum on failure.
func ReadTemperature(tr PinTransport, scale TemperatureScale) float32 {
	d := New(tr)
	d.Configure()
	t, err := d.ReadTemperature(scale)
	if err != nil {
		return sentinelFor(err)
	}
	return t
}

// ReadHumidity reads once and returns relative humidity in percent, or a
// sentinel on failure.
func ReadHumidity(tr PinTransport) float32 {
	d := New(tr)
	d.Configure()
	h, err := d.ReadHumidity()
	if err != nil {
		return sentinelFor(err)
	}
	return h
}

func sentinelFor(err error) float32 {
	if errors.Is(err, ErrChecksum) {
		return SentinelChecksum
	}
	return SentinelNoResponse
}
