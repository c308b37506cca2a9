package element

import (
	"gonum.org/v1/gonum/floats/scalar"

	"smith/maths"
	"smith/types"
)

// None 无需元件
func None(freq float64) types.ComponentValue {
	return types.ComponentValue{Kind: types.KindNone, Frequency: freq}
}

// FromReactance 由电抗推导元件 X>0 为电感，X<0 为电容
func FromReactance(x, freq float64) types.ComponentValue {
	w := omega(freq)
	if w == 0 || scalar.EqualWithinAbs(x, 0, maths.Epsilon) {
		return None(freq)
	}
	if x > 0 {
		return types.ComponentValue{Kind: types.KindInductor, Value: x / w, Frequency: freq}
	}
	return types.ComponentValue{Kind: types.KindCapacitor, Value: -1 / (w * x), Frequency: freq}
}

// FromSusceptance 由电纳推导元件 B>0 为电容，B<0 为电感
func FromSusceptance(b, freq float64) types.ComponentValue {
	w := omega(freq)
	if w == 0 || scalar.EqualWithinAbs(b, 0, maths.Epsilon) {
		return None(freq)
	}
	if b > 0 {
		return types.ComponentValue{Kind: types.KindCapacitor, Value: b / w, Frequency: freq}
	}
	return types.ComponentValue{Kind: types.KindInductor, Value: -1 / (w * b), Frequency: freq}
}

// FromImpedance 阻抗的串联等效元件，电抗为零时为纯电阻
func FromImpedance(z complex128, freq float64) types.ComponentValue {
	if scalar.EqualWithinAbs(imag(z), 0, maths.Epsilon) {
		if real(z) < maths.Epsilon {
			return None(freq)
		}
		return types.ComponentValue{Kind: types.KindResistor, Value: real(z), Frequency: freq}
	}
	return FromReactance(imag(z), freq)
}

// SeriesComponent 从当前阻抗到目标阻抗所需的串联元件
func SeriesComponent(current, target complex128, freq float64) types.ComponentValue {
	return FromReactance(imag(target)-imag(current), freq)
}

// ShuntComponent 从当前导纳到目标导纳所需的并联元件
func ShuntComponent(current, target complex128, freq float64) types.ComponentValue {
	return FromSusceptance(imag(target)-imag(current), freq)
}

// KindFromReactance 电抗符号对应的元件类型
func KindFromReactance(x float64) types.ComponentKind {
	switch {
	case x > maths.Epsilon:
		return types.KindInductor
	case x < -maths.Epsilon:
		return types.KindCapacitor
	default:
		return types.KindNone
	}
}

// KindFromSusceptance 电纳符号对应的元件类型
func KindFromSusceptance(b float64) types.ComponentKind {
	switch {
	case b > maths.Epsilon:
		return types.KindCapacitor
	case b < -maths.Epsilon:
		return types.KindInductor
	default:
		return types.KindNone
	}
}

// InductorReactance 电感电抗 ωL
func InductorReactance(l, freq float64) float64 { return omega(freq) * l }

// CapacitorReactance 电容电抗 -1/(ωC)，ωC 接近零时返回负哨兵
func CapacitorReactance(c, freq float64) float64 {
	wc := omega(freq) * c
	if wc < maths.Epsilon {
		return -maths.Sentinel
	}
	return -1 / wc
}

// InductorSusceptance 电感电纳 -1/(ωL)，ωL 接近零时返回负哨兵
func InductorSusceptance(l, freq float64) float64 {
	wl := omega(freq) * l
	if wl < maths.Epsilon {
		return -maths.Sentinel
	}
	return -1 / wl
}

// CapacitorSusceptance 电容电纳 ωC
func CapacitorSusceptance(c, freq float64) float64 { return omega(freq) * c }

// Reactance 元件电抗，电阻与未知类型为零
func Reactance(kind types.ComponentKind, value, freq float64) float64 {
	switch kind {
	case types.KindInductor:
		return InductorReactance(value, freq)
	case types.KindCapacitor:
		return CapacitorReactance(value, freq)
	default:
		return 0
	}
}

// Susceptance 元件电纳，电阻与未知类型为零
func Susceptance(kind types.ComponentKind, value, freq float64) float64 {
	switch kind {
	case types.KindInductor:
		return InductorSusceptance(value, freq)
	case types.KindCapacitor:
		return CapacitorSusceptance(value, freq)
	default:
		return 0
	}
}
