// services/hal/adaptor_analog.go
package hal

import (
	"context"
	"time"

	"growkit-go/types"
	"growkit-go/x/mathx"
	"growkit-go/x/timex"
)

// AnalogRole names what the ADC channel is wired to.
type AnalogRole string

const (
	RoleLight    AnalogRole = "light"
	RoleMoisture AnalogRole = "moisture"
)

// AnalogParams calibrates the raw-to-percent mapping. RawLo maps to 0%,
// RawHi to 100%; for sensors whose raw value falls as the quantity rises
// (capacitive soil probes), set RawLo > RawHi.
type AnalogParams struct {
	Role  AnalogRole
	RawLo uint16
	RawHi uint16
}

type analogAdaptor struct {
	id     string
	pin    ADCPin
	params AnalogParams
}

func NewAnalogAdaptor(id string, pin ADCPin, p AnalogParams) Adaptor {
	if p.RawLo == 0 && p.RawHi == 0 {
		p.RawHi = 0xFFFF
	}
	return &analogAdaptor{id: id, pin: pin, params: p}
}

func (a *analogAdaptor) ID() string { return a.id }

func (a *analogAdaptor) Capabilities() []CapInfo {
	return []CapInfo{{
		Kind: string(a.kind()),
		Info: map[string]any{
			"pin":            a.pin.Number(),
			"raw_lo":         a.params.RawLo,
			"raw_hi":         a.params.RawHi,
			"schema_version": 1,
		},
	}}
}

func (a *analogAdaptor) kind() types.Kind {
	if a.params.Role == RoleMoisture {
		return types.KindMoisture
	}
	return types.KindLight
}

func (a *analogAdaptor) Trigger(context.Context) (time.Duration, error) {
	return 0, nil
}

func (a *analogAdaptor) Collect(context.Context) (Sample, error) {
	pct := a.percentX100(a.pin.ReadRaw())
	ts := timex.NowMs()
	if a.params.Role == RoleMoisture {
		return Sample{{Kind: string(types.KindMoisture), Payload: types.MoistureValue{PctX100: pct}, TsMs: ts}}, nil
	}
	return Sample{{Kind: string(types.KindLight), Payload: types.LightValue{PctX100: pct}, TsMs: ts}}, nil
}

func (a *analogAdaptor) percentX100(raw uint16) uint16 {
	lo, hi := a.params.RawLo, a.params.RawHi
	if lo <= hi {
		return mathx.MapU16(raw, lo, hi, 0, 10000)
	}
	// Inverted span: higher raw means drier/darker.
	return 10000 - mathx.MapU16(raw, hi, lo, 0, 10000)
}

func (a *analogAdaptor) Control(string, string, any) (any, error) {
	return nil, ErrUnsupported
}
