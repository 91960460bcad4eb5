package dht

import (
	"errors"
	"testing"
)

func near(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestRead_DecodesReading(t *testing.T) {
	line := newSimLine(payloadBytes(45, 0, 23, 50))
	d := New(line)
	d.Configure()

	f, err := d.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if f.HumidityInt != 45 || f.HumidityFrac != 0 || f.TempInt != 23 || f.TempFrac != 50 {
		t.Fatalf("frame = %+v", f)
	}
	if got := f.RelHumidity(); !near(got, 45.0, 0.001) {
		t.Fatalf("humidity = %v (want 45.0)", got)
	}
	if got := f.Temperature(Celsius); !near(got, 23.50, 0.001) {
		t.Fatalf("celsius = %v (want 23.50)", got)
	}
	if got := f.Temperature(Fahrenheit); !near(got, 74.3, 0.01) {
		t.Fatalf("fahrenheit = %v (want 74.3)", got)
	}
	if got := f.Temperature(Kelvin); !near(got, 296.65, 0.001) {
		t.Fatalf("kelvin = %v (want 296.65)", got)
	}
}

func TestRead_NoResponse_SkipsSampling(t *testing.T) {
	line := newSimLine(payloadBytes(45, 0, 23, 50))
	line.present = false
	d := New(line)
	d.Configure()

	_, err := d.Read()
	if !errors.Is(err, ErrNoResponse) {
		t.Fatalf("err = %v (want ErrNoResponse)", err)
	}
	// 18 ms start pulse plus the 40 us response check and nothing else: a
	// non-answering sensor must not cost any sampling time.
	if line.nowMicros != 18_000+40 {
		t.Fatalf("elapsed = %d us (want 18040, no bit sampling)", line.nowMicros)
	}

	if got := ReadTemperature(line, Celsius); got != SentinelNoResponse {
		t.Fatalf("sentinel = %v (want %v)", got, SentinelNoResponse)
	}
}

func TestRead_ChecksumMismatch(t *testing.T) {
	p := payloadBytes(45, 0, 23, 50)
	p[4]++ // corrupt the integrity sum
	line := newSimLine(p)
	d := New(line)
	d.Configure()

	_, err := d.Read()
	if !errors.Is(err, ErrChecksum) {
		t.Fatalf("err = %v (want ErrChecksum)", err)
	}
	var ce *ChecksumError
	if !errors.As(err, &ce) {
		t.Fatalf("err %T does not carry the decoded frame", err)
	}
	if ce.Frame.HumidityInt != 45 || ce.Frame.TempInt != 23 || ce.Frame.Checksum != p[4] {
		t.Fatalf("diagnostic frame = %+v", ce.Frame)
	}

	if got := ReadHumidity(line); got != SentinelChecksum {
		t.Fatalf("sentinel = %v (want %v)", got, SentinelChecksum)
	}
}

func TestRead_TimeoutIsNotNoResponse(t *testing.T) {
	line := newSimLine(payloadBytes(1, 2, 3, 4))
	// Sensor acknowledges the start condition and then wedges the line low.
	line.custom = []segment{{simRespondDelay, true}, {1_000_000, false}}
	d := New(line)
	d.Configure()

	_, err := d.Read()
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v (want ErrTimeout)", err)
	}
	if errors.Is(err, ErrNoResponse) {
		t.Fatal("mid-protocol hang must not be reported as no-response")
	}
}

func TestRead_ConsecutiveReadsIdentical(t *testing.T) {
	line := newSimLine(payloadBytes(60, 20, 19, 5))
	d := New(line)
	d.Configure()

	f1, err := d.Read()
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	f2, err := d.Read()
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if f1 != f2 {
		t.Fatalf("reads differ: %+v vs %+v", f1, f2)
	}
}

func TestRead_DefaultsAppliedWithoutConfigure(t *testing.T) {
	line := newSimLine(payloadBytes(50, 0, 25, 0))
	d := New(line)
	// No Configure: Read must self-default rather than spin with zero budgets.
	f, err := d.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := f.Celsius(); !near(got, 25, 0.001) {
		t.Fatalf("celsius = %v", got)
	}
}
