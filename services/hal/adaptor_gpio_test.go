// services/hal/adaptor_gpio_test.go
package hal

import (
	"context"
	"errors"
	"testing"

	"growkit-go/types"
)

// fakePin is a settable digital pin.
type fakePin struct {
	level  bool
	mode   string
	pull   Pull
	number int
}

func (p *fakePin) ConfigureInput(pull Pull) error {
	p.mode, p.pull = "input", pull
	return nil
}
func (p *fakePin) ConfigureOutput(initial bool) error {
	p.mode, p.level = "output", initial
	return nil
}
func (p *fakePin) Set(level bool) { p.level = level }
func (p *fakePin) Get() bool      { return p.level }
func (p *fakePin) Number() int    { return p.number }

var _ GPIOPin = (*fakePin)(nil)

func TestGPIOAdaptor_LEDSetGetToggle(t *testing.T) {
	p := &fakePin{number: 13}
	ad := NewGPIOAdaptor("led0", p, GPIOParams{Role: RoleLED})
	if p.mode != "output" {
		t.Fatalf("mode = %q", p.mode)
	}

	if _, err := ad.Control("led", "set", map[string]any{"level": true}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !p.level {
		t.Fatal("pin not driven high")
	}
	res, err := ad.Control("led", "get", nil)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if res.(map[string]any)["level"] != 1 {
		t.Fatalf("get = %v", res)
	}
	if _, err := ad.Control("led", "toggle", nil); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if p.level {
		t.Fatal("toggle did not clear the pin")
	}
}

func TestGPIOAdaptor_MotorInverted(t *testing.T) {
	p := &fakePin{number: 9}
	ad := NewGPIOAdaptor("motor0", p, GPIOParams{Role: RoleMotor, Invert: true})
	// Logical off at init means physical high on an inverted driver.
	if !p.level {
		t.Fatal("inverted motor should idle high")
	}
	if _, err := ad.Control("motor", "set", map[string]any{"level": true}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if p.level {
		t.Fatal("logical on should drive low")
	}
}

func TestGPIOAdaptor_MotionCollect(t *testing.T) {
	p := &fakePin{number: 2}
	ad := NewGPIOAdaptor("pir0", p, GPIOParams{Role: RoleMotion, Pull: PullDown})
	if p.mode != "input" || p.pull != PullDown {
		t.Fatalf("pin config: mode=%q pull=%v", p.mode, p.pull)
	}

	p.level = true
	s, err := ad.Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	v, ok := s[0].Payload.(types.MotionValue)
	if !ok || !v.Detected {
		t.Fatalf("payload = %#v", s[0].Payload)
	}

	// Motion inputs are read-only.
	if _, err := ad.Control("motion", "set", map[string]any{"level": true}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("set on input: %v", err)
	}
}

func TestGPIOAdaptor_OutputsDoNotSample(t *testing.T) {
	ad := NewGPIOAdaptor("led0", &fakePin{}, GPIOParams{Role: RoleLED})
	if _, err := ad.Trigger(context.Background()); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("trigger on output: %v", err)
	}
}
