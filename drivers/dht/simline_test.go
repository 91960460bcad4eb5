package dht

// Virtual-time line simulator. Time advances only through the driver's delay
// calls, so every test run sees exactly the same waveform. Modeled as an
// absolute timeline of level segments the sensor would drive after a valid
// start condition.

// Compile-time check.
var _ PinTransport = (*simLine)(nil)

type segment struct {
	durMicros int64
	level     bool
}

type simLine struct {
	nowMicros int64

	output bool // pin currently driven by the controller
	driven bool // driven level while output
	lowAt  int64

	present bool
	payload [5]uint8
	custom  []segment // overrides payload-derived waveform when set

	armedAt int64
	wave    []segment
}

func newSimLine(payload [5]uint8) *simLine {
	return &simLine{present: true, payload: payload}
}

// payloadBytes builds the five wire bytes for a reading, last byte the valid
// modular checksum.
func payloadBytes(humInt, humFrac, tempInt, tempFrac uint8) [5]uint8 {
	return [5]uint8{humInt, humFrac, tempInt, tempFrac, humInt + humFrac + tempInt + tempFrac}
}

// Sensor-side timings (datasheet nominals).
const (
	simRespondDelay = 20 // us of pull-up before the ack low pulse
	simAckPhase     = 80
	simBitLead      = 50
	simOneHigh      = 70
	simZeroHigh     = 26
)

func (s *simLine) buildWave() []segment {
	if s.custom != nil {
		return s.custom
	}
	wave := []segment{
		{simRespondDelay, true},
		{simAckPhase, false},
		{simAckPhase, true},
	}
	for i := 0; i < frameBits; i++ {
		wave = append(wave, segment{simBitLead, false})
		if s.payload[i/8]&(1<<(7-i%8)) != 0 {
			wave = append(wave, segment{simOneHigh, true})
		} else {
			wave = append(wave, segment{simZeroHigh, true})
		}
	}
	// EOF low, then the pull-up owns the line again.
	return append(wave, segment{simBitLead, false})
}

func (s *simLine) ConfigureOutput(initial bool) {
	s.output = true
	s.driven = initial
	if !initial {
		s.lowAt = s.nowMicros
	}
	s.wave = nil // re-arm for the next round
}

func (s *simLine) ConfigureInput(Pull) {
	wokeSensor := s.output && !s.driven && s.nowMicros-s.lowAt >= 18_000
	s.output = false
	if s.present && wokeSensor {
		s.armedAt = s.nowMicros
		s.wave = s.buildWave()
	}
}

func (s *simLine) Set(level bool) {
	if s.driven && !level {
		s.lowAt = s.nowMicros
	}
	s.driven = level
}

func (s *simLine) Get() bool {
	if s.output {
		return s.driven
	}
	if s.wave == nil {
		return true // idle pull-up
	}
	t := s.nowMicros - s.armedAt
	for _, seg := range s.wave {
		if t < seg.durMicros {
			return seg.level
		}
		t -= seg.durMicros
	}
	return true
}

func (s *simLine) DelayMicroseconds(n int) { s.nowMicros += int64(n) }
func (s *simLine) DelayMilliseconds(n int) { s.nowMicros += int64(n) * 1000 }
