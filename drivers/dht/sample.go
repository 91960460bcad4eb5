package dht

// sampleDelayMicros is the discriminator between a short (zero) and a long
// (one) high pulse: the sensor holds the line high ~26-28 us for a zero and
// ~70 us for a one. Sampling earlier risks reading a one as a zero on a
// capacitive line; later risks missing the pulse entirely. Do not tune.
const sampleDelayMicros = 28

// sampleBits clocks exactly 40 bits off the line. Call only after a
// successful handshake, with the line in the first bit's low lead-in.
func (d *Device) sampleBits(out *RawBitFrame) error {
	for i := range out {
		// Tail of the previous bit's high pulse; no-op on the first bit
		// and after a zero (the line is already low).
		if !d.waitFor(false, d.cfg.BitBudgetMicros) {
			return ErrTimeout
		}
		// ~50 us low lead-in before every bit.
		if !d.waitFor(true, d.cfg.BitBudgetMicros) {
			return ErrTimeout
		}
		d.tr.DelayMicroseconds(sampleDelayMicros)
		out[i] = d.tr.Get()
	}
	return nil
}
