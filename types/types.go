package types

// ---- Capability kinds ----

type Kind string

const (
	KindTemperature Kind = "temperature"
	KindHumidity    Kind = "humidity"
	KindLight       Kind = "light"
	KindMoisture    Kind = "moisture"
	KindMotion      Kind = "motion"
	KindLED         Kind = "led"
	KindMotor       Kind = "motor"
	KindRing        Kind = "ring"
)

// Info envelope each device/cap exposes.
type Info struct {
	SchemaVersion int         `json:"schema_version"`
	Driver        string      `json:"driver"`
	Detail        interface{} `json:"detail,omitempty"`
}

// ---- Plain pin capabilities ----

type LEDValue struct {
	Level uint8 `json:"level"` // 0 or 1
}

type LEDSet struct {
	Level bool `json:"level"`
}

type MotorValue struct {
	On bool `json:"on"`
}

type MotorSet struct {
	On bool `json:"on"`
}

type MotionValue struct {
	Detected bool `json:"detected"`
}

// ---- Analog capabilities ----

type LightValue struct {
	// Percent of full scale, hundredths (0..10000).
	PctX100 uint16 `json:"pct_x100"`
}

type MoistureValue struct {
	// Percent of the calibrated wet..dry span, hundredths (0..10000).
	PctX100 uint16 `json:"pct_x100"`
}
