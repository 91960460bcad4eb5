package dht

// Pull selects the pin's passive pull when configured as an input.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// PinTransport is the narrow pin capability the driver runs the wire through.
// The driver never owns hardware registers; implementations are supplied by
// the host (machine pins on MCU, rpio on Linux, a scripted line in tests).
//
// Delay implementations must offer microsecond-class resolution: the protocol
// discriminates bits on pulse widths a few tens of microseconds apart, so a
// few microseconds of jitter is the acceptable budget. Millisecond delays are
// only used for the start condition and may sleep.
type PinTransport interface {
	// ConfigureInput releases the line to the given pull.
	ConfigureInput(pull Pull)
	// ConfigureOutput drives the line, starting at the given level.
	ConfigureOutput(initial bool)
	Set(level bool)
	Get() bool
	DelayMicroseconds(n int)
	DelayMilliseconds(n int)
}
