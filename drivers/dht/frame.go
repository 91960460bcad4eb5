package dht

import (
	"fmt"
)

// frameBits is the number of bits in one transfer: five bytes of payload.
const frameBits = 40

// RawBitFrame holds the bits of one transfer in wire order, index 0 received
// first. It only lives for the duration of a single read.
type RawBitFrame [frameBits]bool

// Frame is the decoded five-byte payload of one reading.
// Integer and fractional parts are the sensor's split decimal encoding:
// 23.50 degC arrives as TempInt=23, TempFrac=50.
type Frame struct {
	HumidityInt  uint8
	HumidityFrac uint8
	TempInt      uint8
	TempFrac     uint8
	Checksum     uint8
}

// ChecksumError reports a frame whose integrity sum failed. It carries every
// decoded byte so callers can log the corrupt frame instead of swallowing it.
type ChecksumError struct {
	Frame Frame
	Want  uint8 // sum the payload bytes imply
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("dht: checksum mismatch: got %#02x want %#02x (rh %d.%d t %d.%d)",
		e.Frame.Checksum, e.Want, e.Frame.HumidityInt, e.Frame.HumidityFrac,
		e.Frame.TempInt, e.Frame.TempFrac)
}

func (e *ChecksumError) Unwrap() error { return ErrChecksum }

// decodeFrame packs the 40 wire bits into five bytes, most significant bit
// first within each byte, and validates the modular checksum.
func decodeFrame(bits *RawBitFrame) (Frame, error) {
	var b [5]uint8
	for i, bit := range bits {
		if bit {
			b[i/8] |= 1 << (7 - i%8)
		}
	}
	f := Frame{
		HumidityInt:  b[0],
		HumidityFrac: b[1],
		TempInt:      b[2],
		TempFrac:     b[3],
		Checksum:     b[4],
	}
	want := b[0] + b[1] + b[2] + b[3] // uint8 arithmetic is the mod-256 sum
	if f.Checksum != want {
		return f, &ChecksumError{Frame: f, Want: want}
	}
	return f, nil
}

// Fixed-point accessors for MCU payloads.

// CentiCelsius returns hundredths of a degree Celsius (2350 => 23.50 degC).
func (f Frame) CentiCelsius() int32 {
	return int32(f.TempInt)*100 + int32(f.TempFrac)
}

// CentiRelHumidity returns hundredths of %RH (4500 => 45.00%).
func (f Frame) CentiRelHumidity() uint16 {
	return uint16(f.HumidityInt)*100 + uint16(f.HumidityFrac)
}
