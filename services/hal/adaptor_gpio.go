// services/hal/adaptor_gpio.go
package hal

import (
	"context"
	"time"

	"growkit-go/types"
	"growkit-go/x/timex"
)

// GPIORole names what the single digital pin is wired to.
type GPIORole string

const (
	RoleLED    GPIORole = "led"
	RoleMotor  GPIORole = "motor"
	RoleMotion GPIORole = "motion"
)

// GPIOParams configures a single-pin digital capability.
type GPIOParams struct {
	Role   GPIORole
	Invert bool
	Pull   Pull // inputs only
}

// gpioAdaptor drives one LED/motor output or reads one motion input. No
// protocol, no timing: a single register access per operation.
type gpioAdaptor struct {
	id     string
	pin    GPIOPin
	params GPIOParams
}

func NewGPIOAdaptor(id string, pin GPIOPin, p GPIOParams) Adaptor {
	a := &gpioAdaptor{id: id, pin: pin, params: p}
	if p.Role == RoleMotion {
		_ = pin.ConfigureInput(p.Pull)
	} else {
		_ = pin.ConfigureOutput(p.Invert) // logical off
	}
	return a
}

func (a *gpioAdaptor) ID() string { return a.id }

func (a *gpioAdaptor) Capabilities() []CapInfo {
	return []CapInfo{{
		Kind: string(a.kind()),
		Info: map[string]any{
			"pin":            a.pin.Number(),
			"invert":         a.params.Invert,
			"schema_version": 1,
		},
	}}
}

func (a *gpioAdaptor) kind() types.Kind {
	switch a.params.Role {
	case RoleMotor:
		return types.KindMotor
	case RoleMotion:
		return types.KindMotion
	default:
		return types.KindLED
	}
}

// Trigger/Collect sample the pin; meaningful for inputs only.
func (a *gpioAdaptor) Trigger(context.Context) (time.Duration, error) {
	if a.params.Role != RoleMotion {
		return 0, ErrUnsupported
	}
	return 0, nil
}

func (a *gpioAdaptor) Collect(context.Context) (Sample, error) {
	if a.params.Role != RoleMotion {
		return nil, ErrUnsupported
	}
	return Sample{{
		Kind:    string(types.KindMotion),
		Payload: types.MotionValue{Detected: a.logical(a.pin.Get())},
		TsMs:    timex.NowMs(),
	}}, nil
}

func (a *gpioAdaptor) Control(kind, method string, payload any) (any, error) {
	if kind != string(a.kind()) {
		return nil, ErrUnsupported
	}
	switch method {
	case "set":
		if a.params.Role == RoleMotion {
			return nil, ErrUnsupported
		}
		lvl := wantBool(payload, "level")
		a.pin.Set(a.physical(lvl))
		return map[string]any{"ok": true}, nil
	case "get":
		return map[string]any{"level": boolToInt(a.logical(a.pin.Get()))}, nil
	case "toggle":
		if a.params.Role == RoleMotion {
			return nil, ErrUnsupported
		}
		a.pin.Set(!a.pin.Get())
		return map[string]any{"ok": true}, nil
	default:
		return nil, ErrUnsupported
	}
}

func (a *gpioAdaptor) logical(level bool) bool {
	if a.params.Invert {
		return !level
	}
	return level
}

func (a *gpioAdaptor) physical(level bool) bool {
	if a.params.Invert {
		return !level
	}
	return level
}
