package dht

// handshake wakes the sensor and verifies its acknowledge response.
//
// The start condition holds the line low for at least 18 ms, long enough for
// the sensor to leave low-power mode. After release the sensor has 40 us to
// pull the line low; a line still high at the sample point means nothing is
// answering. A responding sensor then emits an 80 us low pulse followed by an
// 80 us high pulse, which we wait out before the first data bit.
func (d *Device) handshake() error {
	tr := d.tr

	tr.ConfigureOutput(false)
	tr.DelayMilliseconds(d.cfg.StartLowMs)

	tr.ConfigureInput(PullUp)
	_ = tr.Get() // discard read, clears the driven state
	tr.DelayMicroseconds(40)

	if tr.Get() {
		return ErrNoResponse
	}
	// Ack low phase, then ack high phase. Both bounded: a sensor that yanked
	// the line low and died would otherwise hang us here forever.
	if !d.waitFor(true, d.cfg.AckBudgetMicros) {
		return ErrTimeout
	}
	if !d.waitFor(false, d.cfg.AckBudgetMicros) {
		return ErrTimeout
	}
	return nil
}

// waitFor polls the line until it reads level, spending its budget one
// microsecond at a time. Counting delay ticks rather than wall clock keeps
// the wait deterministic under a simulated transport; on hardware it is the
// same delay-poll loop with the same bound.
func (d *Device) waitFor(level bool, budgetMicros int) bool {
	for i := 0; i < budgetMicros; i++ {
		if d.tr.Get() == level {
			return true
		}
		d.tr.DelayMicroseconds(1)
	}
	return d.tr.Get() == level
}
