package element

import (
	"math"

	"smith/maths"
	"smith/types"
)

func init() {
	AddElement(types.KindResistor, &Resistor{Config{Kind: types.KindResistor, Resistive: true}})
	AddElement(types.KindInductor, &Inductor{Config{Kind: types.KindInductor}})
	AddElement(types.KindCapacitor, &Capacitor{Config{Kind: types.KindCapacitor}})
}

// Resistor 电阻
type Resistor struct{ Config }

// SeriesDelta ΔZ = R
func (*Resistor) SeriesDelta(value, _ float64) complex128 { return complex(value, 0) }

// ShuntDelta ΔY = 1/R
func (*Resistor) ShuntDelta(value, _ float64) complex128 {
	if value < maths.Epsilon {
		return 0
	}
	return complex(1/value, 0)
}

// Inductor 电感
type Inductor struct{ Config }

// SeriesDelta ΔZ = jωL
func (*Inductor) SeriesDelta(value, freq float64) complex128 {
	return complex(0, omega(freq)*value)
}

// ShuntDelta ΔY = -j/(ωL)
func (*Inductor) ShuntDelta(value, freq float64) complex128 {
	wl := omega(freq) * value
	if wl < maths.Epsilon {
		return 0
	}
	return complex(0, -1/wl)
}

// Capacitor 电容
type Capacitor struct{ Config }

// SeriesDelta ΔZ = -j/(ωC)
func (*Capacitor) SeriesDelta(value, freq float64) complex128 {
	wc := omega(freq) * value
	if wc < maths.Epsilon {
		return 0
	}
	return complex(0, -1/wc)
}

// ShuntDelta ΔY = jωC
func (*Capacitor) ShuntDelta(value, freq float64) complex128 {
	return complex(0, omega(freq)*value)
}

// omega 角频率，非正频率按零处理
func omega(freq float64) float64 {
	if freq <= 0 {
		return 0
	}
	return 2 * math.Pi * freq
}
