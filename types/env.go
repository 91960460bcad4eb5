package types

// ------------------------
// Temperature & humidity
// ------------------------

type TemperatureInfo struct {
	Sensor string `json:"sensor"` // "dht11", "dht22", ...
	Pin    int    `json:"pin"`    // data pin
}

type HumidityInfo struct {
	Sensor string `json:"sensor"`
	Pin    int    `json:"pin"`
}

type TemperatureValue struct {
	// Hundredths of degC (e.g. 2350 => 23.50 degC).
	CentiC int32 `json:"centi_c"`
}

type HumidityValue struct {
	// Hundredths of %RH (0..10000 for 0..100.00%).
	RHx100 uint16 `json:"rh_x100"`
}

// EnvReport is the host-side telemetry document published per read.
type EnvReport struct {
	Sensor    string  `json:"sensor"`
	TempC     float32 `json:"temp_c"`
	Humidity  float32 `json:"humidity_pct"`
	TsMs      int64   `json:"ts_ms"`
	Error     string  `json:"error,omitempty"` // errcode short code
	ReadTries int     `json:"read_tries,omitempty"`
}
