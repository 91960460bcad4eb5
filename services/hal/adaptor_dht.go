// services/hal/adaptor_dht.go
package hal

import (
	"context"
	"time"

	"growkit-go/drivers/dht"
	"growkit-go/types"
	"growkit-go/x/timex"
)

// EnvSensor is the surface the adaptor needs from the single-wire driver.
// *dht.Device satisfies it.
type EnvSensor interface {
	Read() (dht.Frame, error)
}

// dhtAdaptor exposes one single-wire temperature/humidity sensor.
//
// The sensor is synchronous: there is no conversion to wait for, but the
// datasheet wants >=1.5 s between protocol rounds. Trigger therefore returns
// the remaining cooldown and Collect runs the blocking read. Failed reads are
// not retried here; retry policy belongs to the caller, and each retry
// re-runs the whole handshake (partial protocol state cannot be resumed).
type dhtAdaptor struct {
	id       string
	dev      EnvSensor
	pinN     int
	sensor   string
	cooldown time.Duration
	lastRead time.Time
}

func NewDHTAdaptor(id string, dev EnvSensor, pinN int, sensor string) Adaptor {
	if sensor == "" {
		sensor = "dht11"
	}
	return &dhtAdaptor{
		id:       id,
		dev:      dev,
		pinN:     pinN,
		sensor:   sensor,
		cooldown: 1500 * time.Millisecond,
	}
}

func (a *dhtAdaptor) ID() string { return a.id }

func (a *dhtAdaptor) Capabilities() []CapInfo {
	return []CapInfo{
		{Kind: string(types.KindTemperature), Info: map[string]any{"unit": "C", "precision": 0.01, "schema_version": 1, "driver": a.sensor, "pin": a.pinN}},
		{Kind: string(types.KindHumidity), Info: map[string]any{"unit": "%RH", "precision": 0.01, "schema_version": 1, "driver": a.sensor, "pin": a.pinN}},
	}
}

func (a *dhtAdaptor) Trigger(context.Context) (time.Duration, error) {
	if a.lastRead.IsZero() {
		return 0, nil
	}
	if wait := a.cooldown - time.Since(a.lastRead); wait > 0 {
		return wait, nil
	}
	return 0, nil
}

func (a *dhtAdaptor) Collect(context.Context) (Sample, error) {
	f, err := a.dev.Read()
	a.lastRead = time.Now()
	if err != nil {
		return nil, err
	}
	ts := timex.NowMs()
	return Sample{
		{Kind: string(types.KindTemperature), Payload: types.TemperatureValue{CentiC: f.CentiCelsius()}, TsMs: ts},
		{Kind: string(types.KindHumidity), Payload: types.HumidityValue{RHx100: f.CentiRelHumidity()}, TsMs: ts},
	}, nil
}

func (a *dhtAdaptor) Control(kind, method string, payload any) (any, error) {
	// No device-specific controls; the sensor is read-only.
	return nil, ErrUnsupported
}
