package dht

// TemperatureScale selects the unit of a converted temperature. It affects
// only the final conversion, never the acquisition.
type TemperatureScale uint8

const (
	Celsius TemperatureScale = iota
	Fahrenheit
	Kelvin
)

func (s TemperatureScale) String() string {
	switch s {
	case Fahrenheit:
		return "F"
	case Kelvin:
		return "K"
	default:
		return "C"
	}
}

// Celsius returns the frame's temperature in degrees Celsius.
func (f Frame) Celsius() float32 {
	return float32(f.TempInt) + float32(f.TempFrac)/100
}

// Temperature returns the frame's temperature in the requested scale.
func (f Frame) Temperature(scale TemperatureScale) float32 {
	c := f.Celsius()
	switch scale {
	case Fahrenheit:
		return c*9/5 + 32
	case Kelvin:
		return c + 273.15
	default:
		return c
	}
}

// RelHumidity returns the frame's relative humidity in percent.
func (f Frame) RelHumidity() float32 {
	return float32(f.HumidityInt) + float32(f.HumidityFrac)/100
}
